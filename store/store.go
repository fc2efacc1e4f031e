// Package store manages on-disk artifacts: per-request scratch
// workspaces and finished ads kept around long enough to be downloaded.
package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vipinsoniofficial/AI-ad-Generator/models"
)

const (
	workspacesDir = "workspaces"
	adsDir        = "ads"
	adExtension   = ".mp4"
)

// ArtifactStore owns a base directory with two areas: workspaces/ for
// per-request temp files (always removed when the request ends) and ads/
// for finished videos awaiting download.
type ArtifactStore struct {
	baseDir string
	logger  *zap.Logger
}

// NewArtifactStore creates the directory layout under baseDir.
func NewArtifactStore(baseDir string, logger *zap.Logger) (*ArtifactStore, error) {
	for _, sub := range []string{workspacesDir, adsDir} {
		if err := os.MkdirAll(filepath.Join(baseDir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s directory: %w", sub, err)
		}
	}
	return &ArtifactStore{baseDir: baseDir, logger: logger}, nil
}

// NewWorkspace creates a scratch directory for one request. The caller
// must invoke the returned cleanup on every exit path.
func (s *ArtifactStore) NewWorkspace() (dir string, cleanup func(), err error) {
	dir, err = os.MkdirTemp(filepath.Join(s.baseDir, workspacesDir), "ad-*")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	cleanup = func() {
		if err := os.RemoveAll(dir); err != nil {
			s.logger.Warn("failed to remove workspace", zap.String("dir", dir), zap.Error(err))
		}
	}
	return dir, cleanup, nil
}

// Publish moves a finished MP4 out of its workspace into the ads area and
// returns the stored artifact. Falls back to a copy when the rename
// crosses filesystems.
func (s *ArtifactStore) Publish(videoPath string, duration time.Duration) (models.VideoArtifact, error) {
	id := uuid.NewString()
	destPath := s.adPath(id)

	if err := os.Rename(videoPath, destPath); err != nil {
		if err := copyFile(videoPath, destPath); err != nil {
			return models.VideoArtifact{}, fmt.Errorf("failed to store artifact: %w", err)
		}
	}

	info, err := os.Stat(destPath)
	if err != nil {
		return models.VideoArtifact{}, fmt.Errorf("failed to stat artifact: %w", err)
	}

	s.logger.Info("published ad artifact",
		zap.String("id", id),
		zap.Int64("bytes", info.Size()),
		zap.Duration("duration", duration),
	)
	return models.VideoArtifact{
		ID:       id,
		Path:     destPath,
		Duration: duration,
		Size:     info.Size(),
	}, nil
}

// Lookup returns the path for a stored ad, guarding against path
// traversal in the ID.
func (s *ArtifactStore) Lookup(id string) (string, error) {
	if id == "" || strings.ContainsAny(id, "/\\.") {
		return "", fmt.Errorf("invalid artifact id %q", id)
	}
	path := s.adPath(id)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("artifact %s not found: %w", id, err)
	}
	return path, nil
}

// Sweep deletes stored ads older than ttl and any workspace directories
// left behind by a crashed process. Called on a schedule.
func (s *ArtifactStore) Sweep(ttl time.Duration) {
	cutoff := time.Now().Add(-ttl)
	removed := 0

	for _, sub := range []string{adsDir, workspacesDir} {
		dir := filepath.Join(s.baseDir, sub)
		entries, err := os.ReadDir(dir)
		if err != nil {
			s.logger.Warn("sweep failed to read dir", zap.String("dir", dir), zap.Error(err))
			continue
		}
		for _, entry := range entries {
			info, err := entry.Info()
			if err != nil || info.ModTime().After(cutoff) {
				continue
			}
			if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
				s.logger.Warn("sweep failed to remove entry", zap.String("name", entry.Name()), zap.Error(err))
				continue
			}
			removed++
		}
	}

	if removed > 0 {
		s.logger.Info("swept expired artifacts", zap.Int("removed", removed))
	}
}

func (s *ArtifactStore) adPath(id string) string {
	return filepath.Join(s.baseDir, adsDir, id+adExtension)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
