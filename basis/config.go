// SPDX-License-Identifier: MIT

package basis

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/symbasis/orbital"
)

// IrrepConfig describes the orbitals of one irrep. Energies lists one value
// per orbital in Pitzer order, so len(Energies) must equal Total.
type IrrepConfig struct {
	Total         int       `yaml:"total" json:"total"`
	FrozenCore    int       `yaml:"frozen_core" json:"frozen_core"`
	FrozenVirtual int       `yaml:"frozen_virtual" json:"frozen_virtual"`
	Energies      []float64 `yaml:"energies" json:"energies"`
}

// Config is the on-disk form of Build's inputs.
//
//	positivity: DQGT1
//	constrain_d3: true
//	irreps:
//	  - {total: 4, frozen_core: 1, energies: [-20.5, -1.3, -0.6, 0.4]}
//	  - {total: 2, frozen_virtual: 1, energies: [-0.5, 0.9]}
type Config struct {
	Irreps      []IrrepConfig `yaml:"irreps" json:"irreps"`
	Positivity  string        `yaml:"positivity" json:"positivity"`
	ConstrainD3 bool          `yaml:"constrain_d3" json:"constrain_d3"`
}

// DecodeConfig reads one YAML document from r. Unknown keys are rejected.
func DecodeConfig(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrConfig)
		}

		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if len(cfg.Irreps) == 0 {
		return nil, fmt.Errorf("%w: no irreps", ErrConfig)
	}

	return &cfg, nil
}

// LoadConfig reads and decodes the YAML file at path.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeConfig(f)
}

// Spaces returns the per-irrep orbital counts.
func (c *Config) Spaces() orbital.Spaces {
	n := len(c.Irreps)
	s := orbital.Spaces{
		Total:         make([]int, n),
		FrozenCore:    make([]int, n),
		FrozenVirtual: make([]int, n),
	}
	for h, ir := range c.Irreps {
		s.Total[h] = ir.Total
		s.FrozenCore[h] = ir.FrozenCore
		s.FrozenVirtual[h] = ir.FrozenVirtual
	}

	return s
}

// Energies returns the orbital energies indexed [irrep][position].
func (c *Config) Energies() [][]float64 {
	eps := make([][]float64, len(c.Irreps))
	for h, ir := range c.Irreps {
		eps[h] = append([]float64(nil), ir.Energies...)
	}

	return eps
}

// Options translates the positivity keyword and D3 flag into Build options.
func (c *Config) Options() ([]Option, error) {
	p, err := ParsePositivity(c.Positivity)
	if err != nil {
		return nil, err
	}
	opts := []Option{WithPositivity(p)}
	if c.ConstrainD3 {
		opts = append(opts, WithD3())
	}

	return opts, nil
}

// Build builds a Basis from c. Extra options apply after the ones derived
// from c.
func (c *Config) Build(opts ...Option) (*Basis, error) {
	base, err := c.Options()
	if err != nil {
		return nil, err
	}

	return Build(c.Spaces(), c.Energies(), append(base, opts...)...)
}
