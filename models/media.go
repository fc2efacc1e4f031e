package models

import "time"

// AudioTrack is a synthesized voiceover stored in the request workspace.
// Its probed duration is the authoritative duration for the composed video.
type AudioTrack struct {
	Path     string        `json:"path"`
	Duration time.Duration `json:"duration"`
}

// VideoArtifact is the finished MP4, moved into the artifact store and
// addressable by ID until the sweeper reclaims it.
type VideoArtifact struct {
	ID       string        `json:"id"`
	Path     string        `json:"-"`
	Duration time.Duration `json:"duration"`
	Size     int64         `json:"size"`
}
