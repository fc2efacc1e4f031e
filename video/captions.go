package video

import (
	"time"
	"unicode/utf8"

	"github.com/vipinsoniofficial/AI-ad-Generator/models"
)

// Caption is one overlay segment with its display window.
type Caption struct {
	Text  string
	Start time.Duration
	End   time.Duration
}

// BuildCaptionPlan splits the script into caption segments over the audio
// duration. Each line gets screen time proportional to its rune count, a
// deliberate approximation of speech pacing rather than word-level
// alignment. The last segment always ends exactly at total.
func BuildCaptionPlan(script models.AdScript, total time.Duration) []Caption {
	lines := script.Lines()
	if len(lines) == 0 || total <= 0 {
		return nil
	}

	totalRunes := 0
	for _, line := range lines {
		totalRunes += utf8.RuneCountInString(line)
	}
	if totalRunes == 0 {
		return nil
	}

	captions := make([]Caption, 0, len(lines))
	cursor := time.Duration(0)
	for i, line := range lines {
		var end time.Duration
		if i == len(lines)-1 {
			end = total
		} else {
			share := float64(utf8.RuneCountInString(line)) / float64(totalRunes)
			end = cursor + time.Duration(share*float64(total))
		}
		captions = append(captions, Caption{Text: line, Start: cursor, End: end})
		cursor = end
	}
	return captions
}
