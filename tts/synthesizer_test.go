package tts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vipinsoniofficial/AI-ad-Generator/models"
	"github.com/vipinsoniofficial/AI-ad-Generator/pipeline"
)

func TestSynthesizer_EmptyScript(t *testing.T) {
	s := NewSynthesizer("en", zap.NewNop())

	_, err := s.Synthesize(context.Background(), models.AdScript{}, t.TempDir())
	require.Error(t, err)

	var synthErr *pipeline.SynthesisError
	assert.True(t, errors.As(err, &synthErr))
}
