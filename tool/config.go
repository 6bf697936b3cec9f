package tool

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/harune/mediasqueeze-go/types"
)

var (
	ConfigPath    = "config.yaml" // be aware that it can be changed, default to ./config.yaml
	CurrentConfig types.AppConfig
)

// MaxUploadBytes is the pre-flight size cap checked before anything reaches
// the network. 100 MiB, matching the backend's own request limit.
const MaxUploadBytes int64 = 100 * 1024 * 1024

func defaultConfig() types.AppConfig {
	return types.AppConfig{
		Alias:          "mediasqueeze-agent",
		Port:           53330,
		BackendURL:     "http://127.0.0.1:5000",
		WebOutPath:     "web/out",
		MaxUploadBytes: MaxUploadBytes,
		UploadRatePS:   4,
	}
}

// LoadConfig reads the yaml config, creating it with defaults when missing.
func LoadConfig(path string) (types.AppConfig, error) {
	if path == "" {
		path = ConfigPath
	}
	ConfigPath = path

	cfg := defaultConfig()

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			if writeErr := writeDefaultConfig(path, cfg); writeErr != nil {
				return cfg, fmt.Errorf("config file not found, and failed to generate default config: %v", writeErr)
			}
			DefaultLogger.Infof("Created new config file at %s", path)
			CurrentConfig = cfg
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %v", err)
	}
	if info.IsDir() {
		return cfg, fmt.Errorf("config file path is a directory: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %v", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %v", err)
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = MaxUploadBytes
	}
	if cfg.UploadRatePS <= 0 {
		cfg.UploadRatePS = 4
	}

	CurrentConfig = cfg
	return cfg, nil
}

func writeDefaultConfig(path string, cfg types.AppConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func GetCurrentConfig() *types.AppConfig {
	return &CurrentConfig
}
