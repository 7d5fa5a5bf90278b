package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// EnvBrokers lists comma-separated Kafka brokers used when neither a flag nor a profile provides them
	EnvBrokers = "WAVE_SPLITTER_BROKERS"
	// LocalConfigName is looked up in the current directory before the default path
	LocalConfigName = "wave-splitter.yaml"
)

// ErrNoBrokers is returned when no source provides broker addresses
var ErrNoBrokers = errors.New("no brokers configured: set --brokers, a profile with brokers, or " + EnvBrokers)

// Profile holds per-profile defaults. Zero values mean "not set".
type Profile struct {
	OutputDir   string   `yaml:"output_dir"`
	NamePattern string   `yaml:"name_pattern"`
	EncodedName string   `yaml:"encoded_name"`
	Count       int      `yaml:"count"`
	Brokers     []string `yaml:"brokers"`
	Topic       string   `yaml:"topic"`
}

// Config is the content of the YAML config file
type Config struct {
	DefaultProfile string             `yaml:"default_profile"`
	Profiles       map[string]Profile `yaml:"profiles"`
}

// DefaultConfigPath returns ~/.config/wave-splitter/config.yaml, or "" when the home directory is unknown
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "wave-splitter", "config.yaml")
}

// ResolveConfigPath returns ./wave-splitter.yaml when it exists, otherwise the default path
func ResolveConfigPath() (string, error) {
	if _, err := os.Stat(LocalConfigName); err == nil {
		abs, err := filepath.Abs(LocalConfigName)
		if err != nil {
			return "", err
		}
		return abs, nil
	}
	path := DefaultConfigPath()
	if path == "" {
		return "", fmt.Errorf("cannot determine home directory")
	}
	return path, nil
}

// LoadConfig reads the config file at path (resolved when empty).
// A missing file yields an empty config; a malformed file is an error.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		resolved, err := ResolveConfigPath()
		if err != nil {
			return Config{}, nil
		}
		path = resolved
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return c, nil
}

// ProfileName returns the profile to use: the flag value, else the config default
func (c Config) ProfileName(flagProfile string) string {
	if flagProfile != "" {
		return flagProfile
	}
	return c.DefaultProfile
}

// Profile returns the named profile (resolved via ProfileName).
// An explicitly requested profile that does not exist is an error.
func (c Config) Profile(flagProfile string) (Profile, error) {
	name := c.ProfileName(flagProfile)
	if name == "" {
		return Profile{}, nil
	}
	p, ok := c.Profiles[name]
	if !ok {
		if flagProfile != "" {
			return Profile{}, fmt.Errorf("profile %q not found in config", name)
		}
		return Profile{}, nil
	}
	return p, nil
}

// ResolveBrokers resolves brokers by priority: --brokers, then the profile, then EnvBrokers
func ResolveBrokers(flagBrokers []string, flagProfile string, c Config) ([]string, error) {
	if len(flagBrokers) > 0 {
		return flagBrokers, nil
	}

	p, err := c.Profile(flagProfile)
	if err != nil {
		return nil, err
	}
	if len(p.Brokers) > 0 {
		return p.Brokers, nil
	}

	if brokers := SplitBrokers(os.Getenv(EnvBrokers)); len(brokers) > 0 {
		return brokers, nil
	}
	return nil, ErrNoBrokers
}

// SplitBrokers splits a comma-separated broker list, dropping blanks
func SplitBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if t := strings.TrimSpace(b); t != "" {
			brokers = append(brokers, t)
		}
	}
	return brokers
}
