package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sphiros/internal/eos"
)

const (
	DefaultBackend   = "auto"
	DefaultParticles = 10
	DefaultRho       = 1.0
	DefaultEint      = 1.0
	DefaultGamma     = 1.4
	DefaultPCutoff   = 1e-6
)

// ErrInvalidParticles is returned for a negative particle count.
var ErrInvalidParticles = errors.New("config: particle count must not be negative")

type Config struct {
	Backend   string           `yaml:"backend"`
	Workers   int              `yaml:"workers"`
	MinChunk  int              `yaml:"min_chunk,omitempty"`
	Particles int              `yaml:"particles"`
	Init      InitConfig       `yaml:"init"`
	Materials []MaterialConfig `yaml:"materials"`
}

type InitConfig struct {
	Rho  float64 `yaml:"rho"`
	Eint float64 `yaml:"eint"`
}

type MaterialConfig struct {
	ID      int      `yaml:"id"`
	Type    string   `yaml:"type"`
	Gamma   *float64 `yaml:"gamma,omitempty"`
	PCutoff *float64 `yaml:"pcutoff,omitempty"`
	PInf    *float64 `yaml:"pinf,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Backend:   DefaultBackend,
		Particles: DefaultParticles,
		Init: InitConfig{
			Rho:  DefaultRho,
			Eint: DefaultEint,
		},
		Materials: []MaterialConfig{
			Material(0, eos.KindLinearGas, eos.Params{eos.ParamGamma: DefaultGamma, eos.ParamPCutoff: DefaultPCutoff}),
		},
	}
}

// Material builds a material entry from registry parameters.
func Material(id int, kind eos.Kind, p eos.Params) MaterialConfig {
	mc := MaterialConfig{ID: id, Type: kind.String()}
	if v, ok := p[eos.ParamGamma]; ok {
		mc.Gamma = &v
	}
	if v, ok := p[eos.ParamPCutoff]; ok {
		mc.PCutoff = &v
	}
	if v, ok := p[eos.ParamPInf]; ok {
		mc.PInf = &v
	}
	return mc
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Materials = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (m MaterialConfig) Params() eos.Params {
	p := eos.Params{}
	if m.Gamma != nil {
		p[eos.ParamGamma] = *m.Gamma
	}
	if m.PCutoff != nil {
		p[eos.ParamPCutoff] = *m.PCutoff
	}
	if m.PInf != nil {
		p[eos.ParamPInf] = *m.PInf
	}
	return p
}

// Validate checks the settings that do not depend on the registry.
func (c *Config) Validate() error {
	if c.Particles < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidParticles, c.Particles)
	}
	return nil
}

// Collection builds the closure models in file order.
func (c *Config) Collection() (eos.Collection, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if len(c.Materials) == 0 {
		return nil, fmt.Errorf("config: no materials defined")
	}
	models := make(eos.Collection, 0, len(c.Materials))
	for i, mc := range c.Materials {
		m, err := eos.NewModelNamed(mc.Type, mc.ID, mc.Params())
		if err != nil {
			return nil, fmt.Errorf("config: material %d: %w", i, err)
		}
		models = append(models, m)
	}
	if err := models.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return models, nil
}
