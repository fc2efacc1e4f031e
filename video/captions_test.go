package video

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vipinsoniofficial/AI-ad-Generator/models"
)

func TestBuildCaptionPlan(t *testing.T) {
	script := models.AdScript{Text: "Short line.\n\nThis one is quite a bit longer than the first.\nBuy now."}
	total := 30 * time.Second

	captions := BuildCaptionPlan(script, total)
	require.Len(t, captions, 3)

	// Contiguous coverage of the full duration.
	assert.Equal(t, time.Duration(0), captions[0].Start)
	for i := 1; i < len(captions); i++ {
		assert.Equal(t, captions[i-1].End, captions[i].Start)
	}
	assert.Equal(t, total, captions[len(captions)-1].End)

	// Longer lines stay on screen longer.
	assert.Greater(t,
		captions[1].End-captions[1].Start,
		captions[0].End-captions[0].Start,
	)

	// Caption text is the script line, unmodified.
	assert.Equal(t, "Short line.", captions[0].Text)
	assert.Equal(t, "Buy now.", captions[2].Text)
}

func TestBuildCaptionPlan_SingleLine(t *testing.T) {
	captions := BuildCaptionPlan(models.AdScript{Text: "One line only."}, 10*time.Second)
	require.Len(t, captions, 1)
	assert.Equal(t, time.Duration(0), captions[0].Start)
	assert.Equal(t, 10*time.Second, captions[0].End)
}

func TestBuildCaptionPlan_Empty(t *testing.T) {
	assert.Nil(t, BuildCaptionPlan(models.AdScript{}, 10*time.Second))
	assert.Nil(t, BuildCaptionPlan(models.AdScript{Text: "hello"}, 0))
}
