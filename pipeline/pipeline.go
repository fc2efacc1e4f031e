// Package pipeline runs the linear ad generation flow: fetch page,
// extract product, write script, synthesize voiceover, compose video.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vipinsoniofficial/AI-ad-Generator/internal/platform"
	"github.com/vipinsoniofficial/AI-ad-Generator/models"
)

// Fetcher retrieves raw HTML for a product page URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Extractor parses product metadata out of page HTML.
type Extractor interface {
	Extract(pageURL, html string) (models.ProductInfo, error)
}

// ScriptGenerator writes the spoken-ad script for a product.
type ScriptGenerator interface {
	Generate(ctx context.Context, product models.ProductInfo) (models.AdScript, error)
}

// Synthesizer renders the script as a voiceover inside workDir.
type Synthesizer interface {
	Synthesize(ctx context.Context, script models.AdScript, workDir string) (models.AudioTrack, error)
}

// Composer builds the MP4 inside workDir and returns its path.
type Composer interface {
	Compose(ctx context.Context, product models.ProductInfo, script models.AdScript, audio models.AudioTrack, workDir string) (string, error)
}

// ArtifactStore is the slice of the store the pipeline needs: scratch
// space per request and a home for the finished video.
type ArtifactStore interface {
	NewWorkspace() (dir string, cleanup func(), err error)
	Publish(videoPath string, duration time.Duration) (models.VideoArtifact, error)
}

// Result carries everything the presentation layer shows: the
// intermediate product info and script plus the finished artifact.
type Result struct {
	Product models.ProductInfo   `json:"product"`
	Script  models.AdScript      `json:"script"`
	Video   models.VideoArtifact `json:"video"`
}

// Pipeline coordinates the five stages. One Run per request; any stage
// failure aborts the whole run and the workspace is removed on every
// exit path.
type Pipeline struct {
	fetcher   Fetcher
	extractor Extractor
	generator ScriptGenerator
	voice     Synthesizer
	composer  Composer
	store     ArtifactStore
	logger    *zap.Logger
}

// New creates a Pipeline from its stages.
func New(fetcher Fetcher, extractor Extractor, generator ScriptGenerator, voice Synthesizer, composer Composer, store ArtifactStore, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		fetcher:   fetcher,
		extractor: extractor,
		generator: generator,
		voice:     voice,
		composer:  composer,
		store:     store,
		logger:    logger,
	}
}

// Run executes the full pipeline for one product URL.
func (p *Pipeline) Run(ctx context.Context, url string) (result *Result, err error) {
	started := time.Now()
	log := p.logger.With(zap.String("url", url))
	log.Info("starting ad generation")

	defer func() {
		if err != nil {
			platform.PipelineRuns.WithLabelValues("failure").Inc()
			if stage := StageOf(err); stage != "" {
				platform.StageFailures.WithLabelValues(string(stage)).Inc()
			}
			log.Error("ad generation failed", zap.Error(err))
			return
		}
		platform.PipelineRuns.WithLabelValues("success").Inc()
		platform.PipelineDuration.Observe(time.Since(started).Seconds())
		log.Info("ad generation complete",
			zap.String("artifact_id", result.Video.ID),
			zap.Duration("elapsed", time.Since(started)),
		)
	}()

	workDir, cleanup, err := p.store.NewWorkspace()
	if err != nil {
		return nil, fmt.Errorf("failed to prepare workspace: %w", err)
	}
	defer cleanup()

	html, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	if html == "" {
		return nil, &FetchError{Err: fmt.Errorf("empty page body")}
	}

	product, err := p.extractor.Extract(url, html)
	if err != nil {
		return nil, err
	}
	if product.Title == "" || product.ImageURL == "" {
		return nil, &ExtractionError{Err: fmt.Errorf("incomplete product info")}
	}

	script, err := p.generator.Generate(ctx, product)
	if err != nil {
		return nil, err
	}
	if script.Text == "" {
		return nil, &GenerationError{Err: fmt.Errorf("empty script")}
	}

	audio, err := p.voice.Synthesize(ctx, script, workDir)
	if err != nil {
		return nil, err
	}
	if audio.Duration <= 0 {
		return nil, &SynthesisError{Err: fmt.Errorf("audio track has no duration")}
	}

	videoPath, err := p.composer.Compose(ctx, product, script, audio, workDir)
	if err != nil {
		return nil, err
	}

	video, err := p.store.Publish(videoPath, audio.Duration)
	if err != nil {
		return nil, &CompositionError{Err: err}
	}

	return &Result{Product: product, Script: script, Video: video}, nil
}
