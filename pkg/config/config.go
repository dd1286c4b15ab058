// Package config provides configuration management for the euclid CLI tool
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Davincible/euclid/pkg/rs"
)

// Config represents the main configuration structure
type Config struct {
	Version  string          `json:"version"`
	Defaults DefaultSettings `json:"defaults"`
	UI       UIConfig        `json:"ui"`
	Output   OutputConfig    `json:"output"`
}

// DefaultSettings holds the code used when no flags or preset are given
type DefaultSettings struct {
	Prime    uint64 `json:"prime"`    // Default: 11
	Length   int    `json:"length"`   // Default: 7
	Distance int    `json:"distance"` // Default: 5
	Base     int64  `json:"base"`     // Default: 2
}

// UIConfig contains user interface settings
type UIConfig struct {
	UseColor  bool   `json:"use_color"`  // Enable colored output
	Verbosity string `json:"verbosity"`  // quiet, normal, verbose
	ShowSteps bool   `json:"show_steps"` // Print the Euclidean steps after decoding
}

// OutputConfig controls how results are emitted
type OutputConfig struct {
	Format string `json:"format"` // text, json
}

// Preset is a named code parameter set for quick access
type Preset struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Params      rs.Params `json:"params"`
	Tags        []string  `json:"tags"`
}

// ConfigManager manages configuration loading and saving
type ConfigManager struct {
	config     *Config
	configPath string
	presets    map[string]*Preset
}

// NewConfigManager creates a new configuration manager
func NewConfigManager() (*ConfigManager, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return NewConfigManagerAt(configPath)
}

// NewConfigManagerAt creates a configuration manager backed by configPath
func NewConfigManagerAt(configPath string) (*ConfigManager, error) {
	cm := &ConfigManager{
		configPath: configPath,
		presets:    make(map[string]*Preset),
	}

	// Load or create default config
	if err := cm.LoadConfig(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		cm.config = DefaultConfig()
		if err := cm.SaveConfig(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	// Presets are optional, so we don't fail here
	if err := cm.LoadPresets(); err != nil {
		cm.presets = make(map[string]*Preset)
	}

	return cm, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0.0",
		Defaults: DefaultSettings{
			Prime:    11,
			Length:   7,
			Distance: 5,
			Base:     2,
		},
		UI: UIConfig{
			UseColor:  true,
			Verbosity: "normal",
			ShowSteps: false,
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// LoadConfig loads the configuration from disk
func (cm *ConfigManager) LoadConfig() error {
	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	cm.config = config
	return nil
}

// SaveConfig saves the configuration to disk
func (cm *ConfigManager) SaveConfig() error {
	configDir := filepath.Dir(cm.configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cm.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cm.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration
func (cm *ConfigManager) GetConfig() *Config {
	return cm.config
}

// SetConfig updates the configuration
func (cm *ConfigManager) SetConfig(config *Config) {
	cm.config = config
}

// Path returns the file the configuration is stored in
func (cm *ConfigManager) Path() string {
	return cm.configPath
}

func (cm *ConfigManager) presetsPath() string {
	return filepath.Join(filepath.Dir(cm.configPath), "presets.json")
}

// LoadPresets loads saved code presets
func (cm *ConfigManager) LoadPresets() error {
	data, err := os.ReadFile(cm.presetsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	presets := make(map[string]*Preset)
	if err := json.Unmarshal(data, &presets); err != nil {
		return fmt.Errorf("failed to parse presets: %w", err)
	}

	cm.presets = presets
	return nil
}

// SavePresets saves code presets to disk
func (cm *ConfigManager) SavePresets() error {
	data, err := json.MarshalIndent(cm.presets, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal presets: %w", err)
	}

	if err := os.WriteFile(cm.presetsPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write presets: %w", err)
	}

	return nil
}

// AddPreset validates and stores a preset
func (cm *ConfigManager) AddPreset(preset *Preset) error {
	if preset.Name == "" {
		return fmt.Errorf("preset name cannot be empty")
	}
	if err := preset.Params.Validate(); err != nil {
		return fmt.Errorf("preset '%s': %w", preset.Name, err)
	}

	cm.presets[preset.Name] = preset
	return cm.SavePresets()
}

// GetPreset retrieves a preset by name
func (cm *ConfigManager) GetPreset(name string) (*Preset, error) {
	preset, exists := cm.presets[name]
	if !exists {
		return nil, fmt.Errorf("preset '%s' not found", name)
	}
	return preset, nil
}

// ListPresets returns all presets sorted by name
func (cm *ConfigManager) ListPresets() []*Preset {
	presets := make([]*Preset, 0, len(cm.presets))
	for _, preset := range cm.presets {
		presets = append(presets, preset)
	}
	sort.Slice(presets, func(i, j int) bool { return presets[i].Name < presets[j].Name })
	return presets
}

// DeletePreset removes a preset
func (cm *ConfigManager) DeletePreset(name string) error {
	if _, exists := cm.presets[name]; !exists {
		return fmt.Errorf("preset '%s' not found", name)
	}

	delete(cm.presets, name)
	return cm.SavePresets()
}

// getConfigPath returns the configuration file path
func getConfigPath() (string, error) {
	if customPath := os.Getenv("EUCLID_CONFIG"); customPath != "" {
		return customPath, nil
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "euclid", "config.json"), nil
	}

	// Default to ~/.config/euclid/config.json
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "euclid", "config.json"), nil
}

// ApplyDefaults fills unset fields of params from the configured defaults
func (cm *ConfigManager) ApplyDefaults(params *rs.Params) {
	ApplyDefaults(cm.config, params)
}

// ApplyDefaults fills unset fields of params from cfg
func ApplyDefaults(cfg *Config, params *rs.Params) {
	if params.Prime == 0 {
		params.Prime = cfg.Defaults.Prime
	}
	if params.Length == 0 {
		params.Length = cfg.Defaults.Length
	}
	if params.Distance == 0 {
		params.Distance = cfg.Defaults.Distance
	}
	if params.Base == 0 {
		params.Base = cfg.Defaults.Base
	}
}

// ValidateConfig checks that the configured defaults describe a usable code
func (cm *ConfigManager) ValidateConfig() error {
	d := cm.config.Defaults
	params := rs.Params{Prime: d.Prime, Length: d.Length, Distance: d.Distance, Base: d.Base}
	if err := params.Validate(); err != nil {
		return fmt.Errorf("invalid defaults: %w", err)
	}

	switch cm.config.Output.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown output format %q", cm.config.Output.Format)
	}

	return nil
}
