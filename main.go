package main

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/harune/mediasqueeze-go/api"
	"github.com/harune/mediasqueeze-go/api/models"
	"github.com/harune/mediasqueeze-go/notify"
	"github.com/harune/mediasqueeze-go/tool"
)

func main() {
	cfg := tool.SetFlags()
	appCfg, err := tool.LoadConfig(cfg.UseConfigPath)
	if err != nil {
		tool.DefaultLogger.Fatalf("%v", err)
	}
	if cfg.UseBackendURL != "" {
		appCfg.BackendURL = cfg.UseBackendURL
	}
	if cfg.UsePort > 0 {
		appCfg.Port = cfg.UsePort
	}
	if cfg.UseAlias != "" {
		appCfg.Alias = cfg.UseAlias
	}
	if cfg.UseWebOutPath != "" {
		appCfg.WebOutPath = cfg.UseWebOutPath
	}
	tool.CurrentConfig = appCfg

	if cfg.SkipNotify {
		notify.SetUseNotify(false)
	}

	// initialize logger
	tool.InitLogger()
	if cfg.Log == "" {
		tool.DefaultLogger.SetLevel(log.DebugLevel)
	} else {
		switch strings.ToLower(cfg.Log) {
		case "dev":
			tool.DefaultLogger.SetLevel(log.DebugLevel)
		case "prod":
			tool.DefaultLogger.SetLevel(log.InfoLevel)
		case "none":
			tool.DefaultLogger.SetLevel(log.FatalLevel)
		default:
			tool.DefaultLogger.Warnf("Unknown log mode %q, using debug level", cfg.Log)
			tool.DefaultLogger.SetLevel(log.DebugLevel)
		}
	}

	tool.DefaultLogger.Infof("%s: backend %s", appCfg.Alias, appCfg.BackendURL)

	// Fresh session on every start.
	models.ResetAll()

	apiServer := api.NewServer(appCfg.Port, appCfg.WebOutPath)
	if err := apiServer.Start(); err != nil {
		tool.DefaultLogger.Fatalf("API server startup failed: %v", err)
	}
}
