// Package video composes the final ad: product image, caption overlays
// and the voiceover track muxed into a single MP4.
package video

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/vipinsoniofficial/AI-ad-Generator/internal/media"
	"github.com/vipinsoniofficial/AI-ad-Generator/models"
	"github.com/vipinsoniofficial/AI-ad-Generator/pipeline"
)

// Encoder settings, chosen for broad playback compatibility.
const (
	videoCodec    = "libx264"
	videoPreset   = "medium"
	videoCRF      = "23"
	audioCodec    = "aac"
	audioBitrate  = "128k"
	fastStartFlag = "+faststart"
	frameRate     = "24"

	imageTimeout  = 15 * time.Second
	maxImageBytes = 20 << 20
)

// Composer assembles MP4 ads with ffmpeg.
type Composer struct {
	client    *http.Client
	frameSize int
	logger    *zap.Logger
}

// NewComposer creates a Composer rendering square frames of frameSize
// pixels.
func NewComposer(frameSize int, logger *zap.Logger) *Composer {
	return &Composer{
		client:    &http.Client{Timeout: imageTimeout},
		frameSize: frameSize,
		logger:    logger,
	}
}

// Compose builds the ad video inside workDir and returns the MP4 path.
// The clip duration is set to the audio track's probed duration.
func (c *Composer) Compose(ctx context.Context, product models.ProductInfo, script models.AdScript, audio models.AudioTrack, workDir string) (string, error) {
	framePath, err := c.prepareFrame(ctx, product.ImageURL, workDir)
	if err != nil {
		return "", &pipeline.CompositionError{Err: err}
	}

	captions := BuildCaptionPlan(script, audio.Duration)
	captionFiles, err := writeCaptionFiles(captions, workDir)
	if err != nil {
		return "", &pipeline.CompositionError{Err: err}
	}

	outPath := filepath.Join(workDir, "ad.mp4")
	args := buildFFmpegArgs(framePath, audio.Path, buildFilterGraph(captions, captionFiles), audio.Duration, outPath)

	c.logger.Info("composing video",
		zap.Duration("duration", audio.Duration),
		zap.Int("captions", len(captions)),
	)

	cmd := exec.CommandContext(ctx, media.FFmpegCommand, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", &pipeline.CompositionError{
			Err: fmt.Errorf("ffmpeg failed: %w, stderr: %s", err, tail(stderr.String(), 800)),
		}
	}

	info, err := os.Stat(outPath)
	if err != nil {
		return "", &pipeline.CompositionError{Err: fmt.Errorf("missing output file: %w", err)}
	}
	if info.Size() == 0 {
		return "", &pipeline.CompositionError{Err: fmt.Errorf("ffmpeg produced an empty file")}
	}

	return outPath, nil
}

// prepareFrame downloads the product image and re-encodes it as an RGB
// JPEG fitted onto a square canvas, the single background frame of the ad.
func (c *Composer) prepareFrame(ctx context.Context, imageURL, workDir string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", fmt.Errorf("invalid image URL %q: %w", imageURL, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d downloading image", resp.StatusCode)
	}

	rawPath := filepath.Join(workDir, "product-image")
	f, err := os.Create(rawPath)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, io.LimitReader(resp.Body, maxImageBytes)); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	f.Close()

	src, err := imaging.Open(rawPath)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	fitted := imaging.Fit(src, c.frameSize, c.frameSize, imaging.Lanczos)
	canvas := imaging.New(c.frameSize, c.frameSize, color.NRGBA{R: 0, G: 0, B: 0, A: 255})
	frame := imaging.PasteCenter(canvas, fitted)

	framePath := filepath.Join(workDir, "frame.jpg")
	if err := imaging.Save(frame, framePath, imaging.JPEGQuality(90)); err != nil {
		return "", fmt.Errorf("failed to encode frame: %w", err)
	}
	return framePath, nil
}

// writeCaptionFiles writes each caption to its own text file so the
// drawtext filter never needs text escaping.
func writeCaptionFiles(captions []Caption, workDir string) ([]string, error) {
	paths := make([]string, 0, len(captions))
	for i, caption := range captions {
		path := filepath.Join(workDir, fmt.Sprintf("caption-%d.txt", i))
		if err := os.WriteFile(path, []byte(caption.Text), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write caption file: %w", err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// buildFilterGraph renders one drawtext per caption segment, followed by
// a pixel-format conversion for player compatibility.
func buildFilterGraph(captions []Caption, captionFiles []string) string {
	var filters []string
	for i, caption := range captions {
		filters = append(filters, fmt.Sprintf(
			"drawtext=textfile=%s:fontcolor=white:fontsize=30:box=1:boxcolor=black@0.5:boxborderw=12:"+
				"x=(w-text_w)/2:y=h-text_h-48:enable='between(t,%.3f,%.3f)'",
			captionFiles[i], caption.Start.Seconds(), caption.End.Seconds(),
		))
	}
	filters = append(filters, "format=yuv420p")
	return strings.Join(filters, ",")
}

// buildFFmpegArgs assembles the single ffmpeg invocation: looped still
// image plus audio, captions drawn in, clip cut to the audio duration.
func buildFFmpegArgs(framePath, audioPath, filterGraph string, duration time.Duration, outPath string) []string {
	return []string{
		"-y",
		"-loop", "1",
		"-framerate", frameRate,
		"-i", framePath,
		"-i", audioPath,
		"-vf", filterGraph,
		"-c:v", videoCodec,
		"-preset", videoPreset,
		"-crf", videoCRF,
		"-c:a", audioCodec,
		"-b:a", audioBitrate,
		"-movflags", fastStartFlag,
		"-t", fmt.Sprintf("%.3f", duration.Seconds()),
		outPath,
	}
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
