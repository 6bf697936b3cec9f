package api

import (
	"fmt"
	"net/http"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/harune/mediasqueeze-go/api/controllers"
	"github.com/harune/mediasqueeze-go/api/middlewares"
	"github.com/harune/mediasqueeze-go/api/notifyhub"
	"github.com/harune/mediasqueeze-go/notify"
	"github.com/harune/mediasqueeze-go/tool"
)

// Server is the local HTTP API the web UI talks to.
type Server struct {
	port       int
	webOutPath string
	engine     *gin.Engine
	server     *http.Server
	hub        *notifyhub.Hub
	mu         sync.RWMutex
}

// NewServer creates a local API server instance. webOutPath points at a
// static web UI export; it is served only when the directory exists.
func NewServer(port int, webOutPath string) *Server {
	return &Server{
		port:       port,
		webOutPath: webOutPath,
		hub:        notifyhub.New(),
	}
}

// Hub returns the websocket notify hub, for wiring into the notify package.
func (s *Server) Hub() *notifyhub.Hub {
	return s.hub
}

func (s *Server) setupRoutes() *gin.Engine {
	if tool.DefaultLogger.GetLevel() == log.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.Default()
	engine.Use(middlewares.AllowAllCORS())
	engine.Use(gin.Recovery())

	cfg := tool.GetCurrentConfig()

	agent := engine.Group("/api/agent/v1", middlewares.OnlyAllowLocal)
	{
		agent.POST("/upload", middlewares.UploadRateLimit(cfg.UploadRatePS), controllers.SubmitUpload) // validate + forward one file to the backend
		agent.POST("/compress", controllers.SubmitCompression)                                        // compress the uploaded file for a kind
		agent.GET("/state", controllers.SessionState)                                                 // session snapshot for UI rendering
		agent.POST("/reset", controllers.ResetSession)                                                // tab-switch / startup reset
		agent.PATCH("/settings", controllers.PatchSettings)                                           // quality and dimension knobs
		agent.GET("/status", controllers.AgentStatus)                                                 // agent + backend reachability
		agent.POST("/cleanup", controllers.TriggerCleanup)                                            // forward cleanup sweep to backend
		agent.GET("/create-qr-code", controllers.GenerateQRCode)                                      // QR code PNG (same params as api.qrserver.com)
		agent.GET("/notify-ws", notifyhub.HandleNotifyWS(s.hub))                                      // UI notification stream
	}

	// Serve the static web UI when an export is present next to the binary.
	if info, err := os.Stat(s.webOutPath); err == nil && info.IsDir() {
		engine.NoRoute(middlewares.OnlyAllowLocal, gin.WrapH(http.FileServer(http.Dir(s.webOutPath))))
		tool.DefaultLogger.Infof("[Server] Serving web UI from %s", s.webOutPath)
	}

	return engine
}

// Start starts the HTTP server. It resets session state first so the UI
// always boots into a clean session.
func (s *Server) Start() error {
	notify.SetHub(s.hub)
	engine := s.setupRoutes()

	s.mu.Lock()
	s.engine = engine
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: engine,
	}
	s.mu.Unlock()

	tool.DefaultLogger.Infof("Starting agent API server on http://127.0.0.1:%d", s.port)
	return s.server.ListenAndServe()
}
