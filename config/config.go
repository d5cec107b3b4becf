package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for retrolog.
type Config struct {
	// Paths maps a project name to its local checkout path.
	Paths map[string]string `yaml:"paths"`
}

// ProjectPath is one configured project, resolved and ready for processing.
type ProjectPath struct {
	Name string
	Path string
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Load reads and parses a configuration file, expanding environment variables
// inside path values. Files ending in .hcl are parsed as HCL project blocks,
// anything else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg *Config
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		cfg, err = parseHCL(data, path)
	} else {
		cfg, err = parseYAML(data)
	}
	if err != nil {
		return nil, err
	}

	for name, p := range cfg.Paths {
		cfg.Paths[name] = expandPath(p)
	}

	if validateErr := validate(cfg); validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
}

func parseYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".retrolog.yaml",
		".retrolog.yml",
		".retrolog.hcl",
		"retrolog.yaml",
		"retrolog.yml",
		"retrolog.hcl",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ProjectPaths returns the configured projects sorted by name, so repeated
// runs produce identical document ordering.
func (c *Config) ProjectPaths() []ProjectPath {
	projects := make([]ProjectPath, 0, len(c.Paths))
	for name, path := range c.Paths {
		projects = append(projects, ProjectPath{Name: name, Path: path})
	}

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].Name < projects[j].Name
	})

	return projects
}

// expandPath expands environment variable references (${VAR}) in a checkout
// path, warning about unset variables.
func expandPath(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// validate checks for required configuration values.
func validate(cfg *Config) error {
	if len(cfg.Paths) == 0 {
		return errors.New("at least one project path must be configured")
	}

	for name, path := range cfg.Paths {
		if strings.TrimSpace(name) == "" {
			return errors.New("project names must not be empty")
		}
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("paths[%s] must not be empty", name)
		}
	}

	return nil
}
