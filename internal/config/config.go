// Package config handles loading of the optional YAML configuration file.
package config

import (
	"os"

	"github.com/woozymasta/incidentmap/internal/incident"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	// IncidentCountries entries are merged over the built-in corrections
	// applied to countries parsed from incident airport strings.
	IncidentCountries map[string]string `yaml:"incident_countries,omitempty"`

	// BoundaryCountries entries are merged over the built-in corrections
	// applied to boundary feature names.
	BoundaryCountries map[string]string `yaml:"boundary_countries,omitempty"`
}

// Load reads and parses the YAML configuration file from the specified path.
// An empty path yields an empty configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "config: read %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, eris.Wrapf(err, "config: parse %s", path)
	}

	return &cfg, nil
}

// Tables returns the built-in country correction tables with the
// configured entries applied on top.
func (c *Config) Tables() incident.Tables {
	t := incident.DefaultTables()
	return incident.Tables{
		Incident: t.Incident.With(c.IncidentCountries),
		Boundary: t.Boundary.With(c.BoundaryCountries),
	}
}
