package calculator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"advdiff/model"
)

// LoadConfig reads simulation parameters from an ini file, or from YAML
// when the extension is .yaml/.yml. Keys that are missing keep the values
// of model.DefaultParameters. An empty path returns the defaults.
func LoadConfig(path string) (model.Parameters, error) {
	if path == "" {
		return model.DefaultParameters(), nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return model.Parameters{}, fmt.Errorf("read config %s: %w", path, err)
		}
		return parseYAML(data)
	}
	file, err := ini.Load(path)
	if err != nil {
		return model.Parameters{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return loadCfg(file), nil
}

func parseYAML(data []byte) (model.Parameters, error) {
	p := model.DefaultParameters()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return model.Parameters{}, fmt.Errorf("parse yaml config: %w", err)
	}
	return p, nil
}

func loadCfg(file *ini.File) model.Parameters {
	d := model.DefaultParameters()
	sim := file.Section("simulation")
	initial := file.Section("initial")
	boundary := file.Section("boundary")
	return model.Parameters{
		NumberOfNodes: sim.Key("NumberOfNodes").MustInt(d.NumberOfNodes),
		StretchFactor: sim.Key("StretchFactor").MustFloat64(d.StretchFactor),
		Viscosity:     sim.Key("Viscosity").MustFloat64(d.Viscosity),
		Density:       sim.Key("Density").MustFloat64(d.Density),
		CFL:           sim.Key("CFL").MustFloat64(d.CFL),
		Tolerance:     sim.Key("Tolerance").MustFloat64(d.Tolerance),
		MaxIterations: sim.Key("MaxIterations").MustInt(d.MaxIterations),

		InitialTemperature: initial.Key("Temperature").MustFloat64(d.InitialTemperature),
		Velocity:           initial.Key("Velocity").MustFloat64(d.Velocity),

		ReportEvery: file.Section("report").Key("Every").MustInt(d.ReportEvery),

		Boundary: model.BoundaryParameters{
			Type:  strings.ToLower(boundary.Key("Type").MustString(d.Boundary.Type)),
			Left:  boundary.Key("Left").MustFloat64(d.Boundary.Left),
			Right: boundary.Key("Right").MustFloat64(d.Boundary.Right),
		},
	}
}
