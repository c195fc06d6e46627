// SPDX-License-Identifier: MIT

package basis

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Constraints selects the N-representability conditions that need triple
// tables.
type Constraints struct {
	T1 bool `json:"t1"` // T1 three-particle positivity condition
	T2 bool `json:"t2"` // T2 three-particle positivity condition
	D3 bool `json:"d3"` // D3 → D2 partial-trace mapping
}

// NeedTriplets reports whether any enabled condition uses triple indices.
func (c Constraints) NeedTriplets() bool { return c.T1 || c.T2 || c.D3 }

// Positivity is a set of two- and three-particle positivity conditions, as
// named by the POSITIVITY keyword of v2RDM-CASSCF (D is always present).
type Positivity struct {
	Q  bool
	G  bool
	T1 bool
	T2 bool
}

// DefaultPositivity is the DQG condition set.
var DefaultPositivity = Positivity{Q: true, G: true}

// knownPositivity lists the accepted keyword values.
var knownPositivity = map[string]Positivity{
	"D":       {},
	"DQ":      {Q: true},
	"DG":      {G: true},
	"DQG":     {Q: true, G: true},
	"DQGT1":   {Q: true, G: true, T1: true},
	"DQGT2":   {Q: true, G: true, T2: true},
	"DQGT1T2": {Q: true, G: true, T1: true, T2: true},
}

// ParsePositivity parses a POSITIVITY keyword (case-insensitive). The empty
// string yields DefaultPositivity.
func ParsePositivity(s string) (Positivity, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	if key == "" {
		return DefaultPositivity, nil
	}
	p, ok := knownPositivity[key]
	if !ok {
		return Positivity{}, fmt.Errorf("%w: %q", ErrUnknownPositivity, s)
	}

	return p, nil
}

// String returns the keyword form, e.g. "DQGT1".
func (p Positivity) String() string {
	var sb strings.Builder
	sb.WriteString("D")
	if p.Q {
		sb.WriteString("Q")
	}
	if p.G {
		sb.WriteString("G")
	}
	if p.T1 {
		sb.WriteString("T1")
	}
	if p.T2 {
		sb.WriteString("T2")
	}

	return sb.String()
}

// Option configures Build and Rebuild. Later options override earlier ones.
type Option func(*config)

// config is the resolved option set. Defaults: no three-particle conditions,
// logs discarded.
type config struct {
	constraints Constraints
	logger      *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return cfg
}

// WithT1 enables the T1 condition.
func WithT1() Option { return func(c *config) { c.constraints.T1 = true } }

// WithT2 enables the T2 condition.
func WithT2() Option { return func(c *config) { c.constraints.T2 = true } }

// WithD3 enables the D3 → D2 mapping constraint.
func WithD3() Option { return func(c *config) { c.constraints.D3 = true } }

// WithConstraints replaces all three flags at once.
func WithConstraints(cs Constraints) Option {
	return func(c *config) { c.constraints = cs }
}

// WithPositivity sets T1 and T2 from a positivity condition set, leaving D3
// alone.
func WithPositivity(p Positivity) Option {
	return func(c *config) {
		c.constraints.T1 = p.T1
		c.constraints.T2 = p.T2
	}
}

// WithLogger routes build diagnostics to l. A nil logger keeps the default,
// which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}
