package web

import (
	"context"
	_ "embed"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vipinsoniofficial/AI-ad-Generator/pipeline"
)

//go:embed index.html
var indexHTML []byte

// AdRunner runs the full generation flow for one product URL.
type AdRunner interface {
	Run(ctx context.Context, url string) (*pipeline.Result, error)
}

// ArtifactLocator resolves a published ad ID to a file on disk.
type ArtifactLocator interface {
	Lookup(id string) (string, error)
}

type Handler struct {
	runner AdRunner
	store  ArtifactLocator
	logger *zap.Logger

	// Generation is CPU and API heavy; one run at a time.
	mu sync.Mutex
}

func NewHandler(runner AdRunner, store ArtifactLocator, logger *zap.Logger) *Handler {
	return &Handler{runner: runner, store: store, logger: logger}
}

type CreateAdRequest struct {
	URL string `json:"url" binding:"required,url"`
}

func (h *Handler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

func (h *Handler) CreateAd(c *gin.Context) {
	var req CreateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a valid product page url is required"})
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	result, err := h.runner.Run(c.Request.Context(), req.URL)
	if err != nil {
		stage := pipeline.StageOf(err)
		h.logger.Error("ad generation failed",
			zap.String("url", req.URL),
			zap.String("stage", string(stage)),
			zap.Error(err))
		c.JSON(statusForStage(stage), gin.H{
			"error": err.Error(),
			"stage": string(stage),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":      result.Product,
		"script":       result.Script.Text,
		"script_lines": result.Script.Lines(),
		"video":        result.Video,
		"video_url":    "/api/ads/" + result.Video.ID + "/video",
		"download_url": "/api/ads/" + result.Video.ID + "/download",
	})
}

func (h *Handler) StreamAd(c *gin.Context) {
	path, ok := h.lookup(c)
	if !ok {
		return
	}
	c.Header("Content-Type", "video/mp4")
	c.File(path)
}

func (h *Handler) DownloadAd(c *gin.Context) {
	path, ok := h.lookup(c)
	if !ok {
		return
	}
	c.FileAttachment(path, "ad.mp4")
}

func (h *Handler) lookup(c *gin.Context) (string, bool) {
	path, err := h.store.Lookup(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ad not found"})
		return "", false
	}
	return path, true
}

// statusForStage maps a failed stage to the HTTP status the client sees.
// Upstream trouble (the product page, the model API, the voice backend)
// is a bad gateway; a page we fetched but could not read is the client's
// problem; everything else is ours.
func statusForStage(stage pipeline.Stage) int {
	switch stage {
	case pipeline.StageFetch, pipeline.StageGenerate, pipeline.StageSynthesis:
		return http.StatusBadGateway
	case pipeline.StageExtract:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
