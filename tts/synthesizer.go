// Package tts converts an ad script into a voiceover track using the
// Google Translate text-to-speech backend.
package tts

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	htgotts "github.com/hegedustibor/htgo-tts"
	"go.uber.org/zap"

	"github.com/vipinsoniofficial/AI-ad-Generator/internal/media"
	"github.com/vipinsoniofficial/AI-ad-Generator/models"
	"github.com/vipinsoniofficial/AI-ad-Generator/pipeline"
)

// Synthesizer produces MP3 voiceovers with a single default voice per
// configured language.
type Synthesizer struct {
	language string
	logger   *zap.Logger
}

// NewSynthesizer creates a Synthesizer for the given language code
// (e.g. "en").
func NewSynthesizer(language string, logger *zap.Logger) *Synthesizer {
	return &Synthesizer{language: language, logger: logger}
}

// Synthesize converts the script text to speech, writing the MP3 into
// workDir, and probes the resulting duration. The probed duration is the
// authoritative length for the composed video.
func (s *Synthesizer) Synthesize(ctx context.Context, script models.AdScript, workDir string) (models.AudioTrack, error) {
	if script.Text == "" {
		return models.AudioTrack{}, &pipeline.SynthesisError{Err: fmt.Errorf("empty script text")}
	}

	s.logger.Info("synthesizing voiceover",
		zap.String("language", s.language),
		zap.Int("chars", len(script.Text)),
	)

	speech := htgotts.Speech{Folder: workDir, Language: s.language}
	path, err := speech.CreateSpeechFile(script.Text, "voiceover-"+uuid.NewString())
	if err != nil {
		return models.AudioTrack{}, &pipeline.SynthesisError{Err: fmt.Errorf("tts backend: %w", err)}
	}

	info, err := os.Stat(path)
	if err != nil {
		return models.AudioTrack{}, &pipeline.SynthesisError{Err: fmt.Errorf("missing audio file: %w", err)}
	}
	if info.Size() == 0 {
		return models.AudioTrack{}, &pipeline.SynthesisError{Err: fmt.Errorf("tts backend produced an empty file")}
	}

	duration, err := media.ProbeDuration(ctx, path)
	if err != nil {
		return models.AudioTrack{}, &pipeline.SynthesisError{Err: err}
	}

	s.logger.Info("voiceover ready",
		zap.String("path", path),
		zap.Duration("duration", duration),
	)
	return models.AudioTrack{Path: path, Duration: duration}, nil
}
