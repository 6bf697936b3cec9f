package tool

import (
	"flag"

	"github.com/harune/mediasqueeze-go/types"
)

// SetFlags parses CLI flags and returns the override config.
func SetFlags() types.Config {
	var cfg types.Config
	flag.StringVar(&cfg.Log, "log", "", "log mode: dev|prod|none")
	flag.StringVar(&cfg.UseConfigPath, "useConfigPath", "", "override config file path")
	flag.StringVar(&cfg.UseBackendURL, "useBackendURL", "", "override compression backend base URL")
	flag.IntVar(&cfg.UsePort, "usePort", 0, "override local API listen port")
	flag.StringVar(&cfg.UseAlias, "useAlias", "", "specify alias for the agent")
	flag.StringVar(&cfg.UseWebOutPath, "useWebOutPath", "", "override static web UI directory")
	flag.BoolVar(&cfg.SkipNotify, "skipNotify", false, "if true, skip websocket notifications.")
	flag.Parse()
	return cfg
}
