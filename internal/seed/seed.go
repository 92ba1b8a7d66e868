// Package seed loads the initial participants, works and results the store
// starts with.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"soc-api/internal/models"
)

//go:embed seed.yaml
var defaultSeed []byte

type Data struct {
	Participants []models.Participant `yaml:"participants"`
	Works        []models.Work        `yaml:"works"`
	Results      []models.Result      `yaml:"results"`
}

// Default returns the built-in competition data.
func Default() (Data, error) {
	return Parse(defaultSeed)
}

// Load reads seed data from path, or the built-in data when path is empty.
func Load(path string) (Data, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("seed file: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return Data{}, fmt.Errorf("parse seed: %w", err)
	}
	return d, nil
}
