package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"inspovault/internal/models"
	"inspovault/internal/store"
)

// YAMLConfig represents the structure of the config.yaml file.
// Lists of records are easier to manage in YAML than env vars.
type YAMLConfig struct {
	Calendars []models.Calendar `yaml:"calendars"`
	Seed      store.SeedData    `yaml:"seed"`
}

// LoadYAMLConfig loads the YAML configuration file at path.
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// CalendarCatalog returns the configured calendars, or the defaults when the
// file is absent or lists none.
func (c *YAMLConfig) CalendarCatalog() []models.Calendar {
	if c == nil || len(c.Calendars) == 0 {
		return models.DefaultCalendars
	}
	return c.Calendars
}

// SeedData returns the extra records from the file, if any.
func (c *YAMLConfig) SeedData() store.SeedData {
	if c == nil {
		return store.SeedData{}
	}
	return c.Seed
}
