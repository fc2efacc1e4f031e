// main.go
package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/vipinsoniofficial/AI-ad-Generator/config"
	"github.com/vipinsoniofficial/AI-ad-Generator/internal/platform"
	"github.com/vipinsoniofficial/AI-ad-Generator/pipeline"
	"github.com/vipinsoniofficial/AI-ad-Generator/processing"
	"github.com/vipinsoniofficial/AI-ad-Generator/scraper"
	"github.com/vipinsoniofficial/AI-ad-Generator/store"
	"github.com/vipinsoniofficial/AI-ad-Generator/tts"
	"github.com/vipinsoniofficial/AI-ad-Generator/video"
	"github.com/vipinsoniofficial/AI-ad-Generator/web"
)

type Server struct {
	Config    *config.Config
	Logger    *zap.Logger
	Artifacts *store.ArtifactStore
	Router    *gin.Engine
	Cron      *cron.Cron
}

func NewServer() (*Server, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := platform.NewLogger(cfg.LogLevel, cfg.LogFormat)

	artifacts, err := store.NewArtifactStore(cfg.DataDir, logger)
	if err != nil {
		return nil, err
	}

	adPipeline := pipeline.New(
		scraper.NewFetcher(logger),
		scraper.NewExtractor(logger),
		processing.NewScriptGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel, logger),
		tts.NewSynthesizer(cfg.VoiceLanguage, logger),
		video.NewComposer(cfg.FrameSize, logger),
		artifacts,
		logger,
	)

	if cfg.LogFormat == "json" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	server := &Server{
		Config:    cfg,
		Logger:    logger,
		Artifacts: artifacts,
		Router:    router,
		Cron:      cron.New(),
	}

	server.setupRoutes(adPipeline)
	server.setupSweeper()

	return server, nil
}

func (s *Server) setupRoutes(adPipeline *pipeline.Pipeline) {
	// Health check (no auth required)
	s.Router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	adHandler := web.NewHandler(adPipeline, s.Artifacts, s.Logger)

	s.Router.GET("/", adHandler.Index)

	api := s.Router.Group("/api")
	{
		api.POST("/ads", adHandler.CreateAd)
		api.GET("/ads/:id/video", adHandler.StreamAd)
		api.GET("/ads/:id/download", adHandler.DownloadAd)
	}
}

// setupSweeper clears out expired ads and any workspace a crashed run
// left behind.
func (s *Server) setupSweeper() {
	ttl := s.Config.ArtifactTTL
	_, err := s.Cron.AddFunc("@every 10m", func() {
		s.Artifacts.Sweep(ttl)
	})
	if err != nil {
		s.Logger.Warn("failed to schedule artifact sweep", zap.Error(err))
	}
}

func (s *Server) Run() error {
	s.Cron.Start()
	defer s.Cron.Stop()

	s.Logger.Info("server starting",
		zap.String("addr", s.Config.Addr),
		zap.Duration("artifact_ttl", s.Config.ArtifactTTL))
	return s.Router.Run(s.Config.Addr)
}

func main() {
	server, err := NewServer()
	if err != nil {
		log.Fatal("Failed to create server:", err)
	}

	if err := server.Run(); err != nil {
		log.Fatal("Failed to run server:", err)
	}
}
