package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/IsmailJamji/it-management-suite-sub001/internal/mapper"
)

// AppConfig is the application configuration, loaded from config.toml
// beside the executable.
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Mapper MapperConfig `toml:"mapper"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig holds on-disk layout settings.
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// MapperConfig exposes the column-mapping thresholds. The defaults are
// empirical; they can be retuned against real sample files without a
// rebuild.
type MapperConfig struct {
	SynonymThreshold float64 `toml:"synonym_threshold"`
	FuzzyThreshold   float64 `toml:"fuzzy_threshold"`
	TrustThreshold   float64 `toml:"trust_threshold"`
	HeaderBoost      float64 `toml:"header_boost"`
	ContentBoost     float64 `toml:"content_boost"`
}

// Thresholds converts the config section to the mapper's form.
func (m MapperConfig) Thresholds() mapper.Thresholds {
	return mapper.Thresholds{
		Synonym:      m.SynonymThreshold,
		Fuzzy:        m.FuzzyThreshold,
		Trust:        m.TrustThreshold,
		HeaderBoost:  m.HeaderBoost,
		ContentBoost: m.ContentBoost,
	}
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *AppConfig {
	t := mapper.DefaultThresholds()
	return &AppConfig{
		Server: ServerConfig{
			Port:    20410,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Mapper: MapperConfig{
			SynonymThreshold: t.Synonym,
			FuzzyThreshold:   t.Fuzzy,
			TrustThreshold:   t.Trust,
			HeaderBoost:      t.HeaderBoost,
			ContentBoost:     t.ContentBoost,
		},
	}
}

// GetExeDir returns the directory of the running executable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig reads config.toml from the executable's directory. A
// missing file yields the defaults; env vars override afterwards.
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(config)
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	applyEnv(config)
	return config, nil
}

func applyEnv(config *AppConfig) {
	if v := os.Getenv("ITMS_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}
}

// EnsureDataDir creates the data directory (with its uploads subdir)
// beside the executable and returns its path.
func EnsureDataDir(config *AppConfig) (string, error) {
	dataDir := config.Data.DataDir
	if !filepath.IsAbs(dataDir) {
		exeDir, err := GetExeDir()
		if err != nil {
			exeDir = "."
		}
		dataDir = filepath.Join(exeDir, dataDir)
	}

	if err := os.MkdirAll(filepath.Join(dataDir, "uploads"), 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}
