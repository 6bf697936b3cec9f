package types

// AppConfig represents the agent configuration loaded from the config file.
type AppConfig struct {
	Alias          string `yaml:"alias"`
	Port           int    `yaml:"port"`           // local API listen port
	BackendURL     string `yaml:"backendURL"`     // compression backend base URL
	WebOutPath     string `yaml:"webOutPath"`     // static web UI directory, served when present
	MaxUploadBytes int64  `yaml:"maxUploadBytes"` // local pre-flight size cap
	UploadRatePS   int    `yaml:"uploadRatePS"`   // upload endpoint rate limit, requests per second
}

// Config holds runtime overrides from CLI flags.
type Config struct {
	Log           string // log mode: dev|prod|none
	UseConfigPath string
	UseBackendURL string
	UsePort       int
	UseAlias      string
	UseWebOutPath string
	SkipNotify    bool // if true, do not broadcast websocket notifications.
}
