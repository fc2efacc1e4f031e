// Package media wraps the ffmpeg/ffprobe binaries needed to measure and
// assemble audio and video files.
package media

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

const (
	FFmpegCommand  = "ffmpeg"
	FFprobeCommand = "ffprobe"
)

// ProbeDuration returns the duration of a media file using ffprobe.
func ProbeDuration(ctx context.Context, path string) (time.Duration, error) {
	cmd := exec.CommandContext(ctx, FFprobeCommand,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "csv=p=0",
		path,
	)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("failed to run ffprobe on %s: %w", path, err)
	}
	return ParseProbeDuration(string(output))
}

// ParseProbeDuration parses ffprobe's csv duration output (seconds as a
// decimal number).
func ParseProbeDuration(output string) (time.Duration, error) {
	durationStr := strings.TrimSpace(output)
	seconds, err := strconv.ParseFloat(durationStr, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration %q: %w", durationStr, err)
	}
	if seconds <= 0 {
		return 0, fmt.Errorf("non-positive duration %q", durationStr)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}
