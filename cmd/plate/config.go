package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/delaneyj/plate/dom"
	"github.com/delaneyj/plate/plate"
	"github.com/delaneyj/plate/script"
)

const defaultEl = "#app"

type fileConfig struct {
	El      string            `json:"el" toml:"el"`
	Data    map[string]any    `json:"data" toml:"data"`
	Methods map[string]string `json:"methods" toml:"methods"`
}

type appConfig struct {
	El      string
	Data    map[string]any
	Methods map[string]plate.Method
}

func loadAppConfig(path string) (appConfig, error) {
	cfg := appConfig{
		El:   defaultEl,
		Data: map[string]any{},
	}
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		meta, err := toml.DecodeFile(path, &raw)
		if err != nil {
			return appConfig{}, fmt.Errorf("load data file: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return appConfig{}, fmt.Errorf("load data file: unknown key %q", undecoded[0].String())
		}
	case ".json":
		b, err := os.ReadFile(path)
		if err != nil {
			return appConfig{}, fmt.Errorf("load data file: %w", err)
		}
		if err := json.Unmarshal(b, &raw); err != nil {
			return appConfig{}, fmt.Errorf("load data file: %w", err)
		}
	default:
		return appConfig{}, fmt.Errorf("load data file: unsupported extension %q", filepath.Ext(path))
	}

	if el := strings.TrimSpace(raw.El); el != "" {
		cfg.El = el
	}
	if raw.Data != nil {
		cfg.Data = raw.Data
	}
	methods, err := script.Methods(raw.Methods)
	if err != nil {
		return appConfig{}, fmt.Errorf("load data file: %w", err)
	}
	cfg.Methods = methods

	return cfg, nil
}

func loadDocument(path string) (*dom.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load template: %w", err)
	}
	defer f.Close()
	return dom.Parse(f)
}

// mount loads the template and data, builds the instance and runs the steps.
func mount(templatePath, dataPath, el string, steps []string) (*plate.Plate, error) {
	cfg, err := loadAppConfig(dataPath)
	if err != nil {
		return nil, err
	}
	if el != "" {
		cfg.El = el
	}
	doc, err := loadDocument(templatePath)
	if err != nil {
		return nil, err
	}
	parsed, err := script.ParseSteps(steps)
	if err != nil {
		return nil, err
	}

	vm := plate.New(plate.Options{
		El:       cfg.El,
		Document: doc,
		Data:     cfg.Data,
		Methods:  cfg.Methods,
	})
	if err := script.Run(vm, parsed); err != nil {
		return nil, err
	}
	return vm, nil
}
