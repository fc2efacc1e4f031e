package video

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vipinsoniofficial/AI-ad-Generator/models"
)

func TestBuildFFmpegArgs(t *testing.T) {
	args := buildFFmpegArgs("/work/frame.jpg", "/work/voice.mp3", "format=yuv420p", 30*time.Second, "/work/ad.mp4")

	expected := []string{
		"-y",
		"-loop", "1",
		"-framerate", frameRate,
		"-i", "/work/frame.jpg",
		"-i", "/work/voice.mp3",
		"-vf", "format=yuv420p",
		"-c:v", videoCodec,
		"-preset", videoPreset,
		"-crf", videoCRF,
		"-c:a", audioCodec,
		"-b:a", audioBitrate,
		"-movflags", fastStartFlag,
		"-t", "30.000",
		"/work/ad.mp4",
	}
	assert.Equal(t, expected, args)
}

func TestBuildFilterGraph(t *testing.T) {
	captions := []Caption{
		{Text: "First line", Start: 0, End: 12 * time.Second},
		{Text: "Second line", Start: 12 * time.Second, End: 30 * time.Second},
	}
	files := []string{"/work/caption-0.txt", "/work/caption-1.txt"}

	graph := buildFilterGraph(captions, files)

	assert.Contains(t, graph, "textfile=/work/caption-0.txt")
	assert.Contains(t, graph, "enable='between(t,0.000,12.000)'")
	assert.Contains(t, graph, "enable='between(t,12.000,30.000)'")
	assert.True(t, strings.HasSuffix(graph, "format=yuv420p"))
	// One drawtext per caption.
	assert.Equal(t, 2, strings.Count(graph, "drawtext="))
}

func TestWriteCaptionFiles(t *testing.T) {
	workDir := t.TempDir()
	captions := BuildCaptionPlan(models.AdScript{Text: "Hello.\nGoodbye."}, 10*time.Second)

	paths, err := writeCaptionFiles(captions, workDir)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	for i, path := range paths {
		assert.Equal(t, filepath.Dir(path), workDir)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, captions[i].Text, string(data))
	}
}
