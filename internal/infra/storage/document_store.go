// Package storage implements filesystem persistence for uploaded documents.
package storage

import (
	"log/slog"
	"os"
	"path/filepath"

	"alufactory/config"
	"alufactory/internal/domain/service"
	"alufactory/internal/util"

	"github.com/pkg/errors"
)

// fsDocumentStore writes documents under a configured upload directory.
// Files are named "<ownerID>_<filename>" so one user's uploads can never
// collide with another's.
type fsDocumentStore struct {
	baseDir string
	logger  *slog.Logger
}

// NewDocumentStore is the constructor for fsDocumentStore.
func NewDocumentStore(cfg *config.Config, logger *slog.Logger) service.DocumentStore {
	return &fsDocumentStore{
		baseDir: cfg.Storage.UploadDir,
		logger:  logger,
	}
}

// Save writes the document bytes and returns the stored file's path
// relative to the upload directory.
func (s *fsDocumentStore) Save(ownerID string, filename string, data []byte) (string, error) {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create upload directory")
	}

	name := ownerID + "_" + util.SanitizeFilename(filename)
	fullPath := filepath.Join(s.baseDir, name)

	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", errors.Wrap(err, "failed to write document")
	}

	if checksum, err := util.CalculateFileChecksum(fullPath); err == nil {
		s.logger.Debug("Stored document",
			slog.String("path", name),
			slog.String("size", util.FormatBytes(int64(len(data)))),
			slog.String("sha256", checksum),
		)
	}

	return name, nil
}

// Load reads a previously stored document by its relative path.
func (s *fsDocumentStore) Load(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, filepath.Base(path)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read document")
	}

	return data, nil
}

// Remove deletes a stored document. Missing files are not an error.
func (s *fsDocumentStore) Remove(path string) error {
	err := os.Remove(filepath.Join(s.baseDir, filepath.Base(path)))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove document")
	}

	return nil
}
