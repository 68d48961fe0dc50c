// Package config loads the static, external game data spec.md §6 and §9
// call out: sector event weights and planet discovery weights. It is read
// once at startup (spec.md §5: "static game data ... is loaded once at
// initialisation and is effectively immutable") and handed to the engine as
// a read-only sectors.Table.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/nicoberrocal/expedicalc/sectors"
)

// GameData bundles the host-overridable static configuration. Ability,
// item, and project effect rules are compiled into the sectors and loadout
// packages directly rather than exposed here (spec.md §9 redesign note:
// "use an immutable base config and a builder that returns a new weighted
// event table") — they're part of the closed rule set, not host-tunable
// balance data the way sector weights are.
type GameData struct {
	SectorTable sectors.Table `yaml:"sectorTable"`

	// Presets is the example-planet presets loader (spec.md §1: "static
	// game data ... example-planet presets"): a named, host-overridable
	// sector sequence a caller can hand to Calculate directly instead of
	// assembling req.Sectors by hand.
	Presets map[string][]sectors.Type `yaml:"presets"`
}

// Default returns the compiled-in baseline GameData (spec.md §6), with a
// couple of illustrative example-planet presets.
func Default() GameData {
	return GameData{
		SectorTable: sectors.DefaultTable(),
		Presets: map[string][]sectors.Type{
			"quickLanding": {sectors.Landing, sectors.Forest, sectors.Ocean},
			"hostileRuins": {sectors.Landing, sectors.Ruins, sectors.Predator, sectors.Mountain},
		},
	}
}

// Load reads GameData from a YAML configuration file named configName
// (without extension) found under configPath or the working directory, via
// viper, overlaying it onto Default(). A missing file is not an error —
// Default() is returned unchanged, since static configuration is optional
// host tuning, not a required input (spec.md §7).
func Load(configName, configPath string) (GameData, error) {
	data := Default()

	v := viper.New()
	v.SetEnvPrefix("EXPEDICALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return data, nil
		}
		return GameData{}, fmt.Errorf("config: reading %q: %w", configName, err)
	}

	raw, err := os.ReadFile(v.ConfigFileUsed())
	if err != nil {
		return GameData{}, fmt.Errorf("config: reading %q: %w", configName, err)
	}
	var overrides GameData
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return GameData{}, fmt.Errorf("config: decoding overrides: %w", err)
	}
	for t, cfg := range overrides.SectorTable {
		data.SectorTable[t] = cfg
	}

	for t := range data.SectorTable {
		if !t.IsValid() {
			return GameData{}, &sectors.ConfigError{Msg: "sector override for unknown type " + string(t)}
		}
	}

	if len(overrides.Presets) > 0 {
		if data.Presets == nil {
			data.Presets = make(map[string][]sectors.Type, len(overrides.Presets))
		}
		for name, sectorList := range overrides.Presets {
			for _, t := range sectorList {
				if !t.IsValid() {
					return GameData{}, &sectors.ConfigError{Msg: "preset " + name + " references unknown sector type " + string(t)}
				}
			}
			data.Presets[name] = sectorList
		}
	}

	return data, nil
}
