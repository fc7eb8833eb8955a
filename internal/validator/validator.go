package validator

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/highcard/internal/config"
	"github.com/arcanaland/highcard/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	ConfigPath string
	Results    ValidationResults
}

func NewValidator(configPath string) *Validator {
	return &Validator{
		ConfigPath: configPath,
		Results:    ValidationResults{},
	}
}

// Validate decodes the config file and collects problems with its values.
// An error is returned only when the file cannot be read or parsed at all.
func (v *Validator) Validate() (ValidationResults, error) {
	if _, err := os.Stat(v.ConfigPath); os.IsNotExist(err) {
		return v.Results, fmt.Errorf("config file not found: %s", v.ConfigPath)
	}

	var cfg config.Config
	meta, err := toml.DecodeFile(v.ConfigPath, &cfg)
	if err != nil {
		return v.Results, fmt.Errorf("error parsing %s: %v", v.ConfigPath, err)
	}

	v.validateKeys(meta)
	v.validateSeed(meta)
	v.validateShuffles(meta, cfg)

	return v.Results, nil
}

// validateKeys warns about keys the game does not read
func (v *Validator) validateKeys(meta toml.MetaData) {
	var unknown []string
	for _, key := range meta.Undecoded() {
		unknown = append(unknown, key.String())
	}
	sort.Strings(unknown)

	for _, key := range unknown {
		v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("unknown key: %s", key))
	}
}

func (v *Validator) validateSeed(meta toml.MetaData) {
	if !meta.IsDefined("seed") {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("seed is not set, the default seed %d will be used", deck.DefaultSeed))
	}
}

func (v *Validator) validateShuffles(meta toml.MetaData, cfg config.Config) {
	if !meta.IsDefined("initial_shuffles") {
		return
	}

	switch {
	case cfg.InitialShuffles < 0:
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("initial_shuffles must not be negative, got %d", cfg.InitialShuffles))
	case cfg.InitialShuffles == 0:
		v.Results.Warnings = append(v.Results.Warnings,
			"initial_shuffles is 0, the first cards will be drawn in deck order")
	}
}
