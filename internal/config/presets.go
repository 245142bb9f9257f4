package config

import (
	"sort"

	"github.com/san-kum/sphiros/internal/eos"
)

func gas(id int) MaterialConfig {
	return Material(id, eos.KindLinearGas, eos.Params{eos.ParamGamma: 1.4, eos.ParamPCutoff: 1e-6})
}

func stiff(id int, gamma, pinf float64) MaterialConfig {
	return Material(id, eos.KindStiffenedGas, eos.Params{eos.ParamGamma: gamma, eos.ParamPCutoff: 1e-6, eos.ParamPInf: pinf})
}

var Presets = map[string]*Config{
	// linear, stiffened (pinf=0), linear, linear at rho=1, e=1
	"demo": {
		Backend: "auto", Particles: 10,
		Init:      InitConfig{Rho: 1.0, Eint: 1.0},
		Materials: []MaterialConfig{gas(0), stiff(1, 1.4, 0.0), gas(2), gas(3)},
	},
	"air": {
		Backend: "auto", Particles: 100000,
		Init:      InitConfig{Rho: 1.204, Eint: 2.1e5},
		Materials: []MaterialConfig{gas(0)},
	},
	"water": {
		Backend: "auto", Particles: 100000,
		Init:      InitConfig{Rho: 1000.0, Eint: 1.5e6},
		Materials: []MaterialConfig{stiff(0, 4.4, 6e8)},
	},
	"mixed": {
		Backend: "auto", Particles: 1000,
		Init:      InitConfig{Rho: 1.0, Eint: 2.0},
		Materials: []MaterialConfig{gas(0), stiff(1, 1.4, 0.1)},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
