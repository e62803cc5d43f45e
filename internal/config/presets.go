package config

var Presets = map[string]*Config{
	"quick": {
		Scheme: "stratonovich", Seed: 1, Paths: 100,
		DtMin: 0.001, DtMax: 0.1, DtCount: 3,
		Drift: 1, Diffusion: 1,
	},
	"paper": {
		Scheme: "stratonovich", Seed: 1, Paths: 10000,
		DtMin: 0.0001, DtMax: 0.1, DtCount: 7,
		Drift: 1, Diffusion: 1,
	},
	"ito": {
		Scheme: "ito", Seed: 1, Paths: 1000,
		DtMin: 0.001, DtMax: 0.1, DtCount: 5,
		Drift: 1, Diffusion: 1,
	},
	"stratonovich": {
		Scheme: "stratonovich", Seed: 1, Paths: 1000,
		DtMin: 0.001, DtMax: 0.1, DtCount: 5,
		Drift: 1, Diffusion: 1,
	},
	"stiff": {
		Scheme: "ito", Seed: 1, Paths: 1000,
		DtMin: 0.0005, DtMax: 0.05, DtCount: 5,
		Drift: -4, Diffusion: 0.5,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
