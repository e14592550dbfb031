package store

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-token-agent/internal/logger"
)

// envelopeFileStorage is the default implementation of [EnvelopeFileStorage]
// on the local filesystem. Relative names are resolved inside dir.
type envelopeFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewEnvelopeFileStorage constructs an [EnvelopeFileStorage] rooted at dir.
func NewEnvelopeFileStorage(dir string, logger *logger.Logger) EnvelopeFileStorage {
	return &envelopeFileStorage{dir: dir, logger: logger}
}

func (s *envelopeFileStorage) Path(name string) (string, error) {
	if !filepath.IsLocal(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}
	return filepath.Join(s.dir, name), nil
}

func (s *envelopeFileStorage) ReadLines(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrEnvelopeFileNotFound, path)
	}
	if err != nil {
		s.logger.Err(err).Str("func", "envelopeFileStorage.ReadLines").Str("path", path).Msg("failed to open file")
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return lines, nil
}

func (s *envelopeFileStorage) WriteText(ctx context.Context, path, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create dir for %s: %w", path, err)
		}
	}

	// write next to the target and rename so a crash never leaves half an envelope
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(text+"\n"), 0o600); err != nil {
		s.logger.Err(err).Str("func", "envelopeFileStorage.WriteText").Str("path", path).Msg("failed to write file")
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", path, err)
	}

	return nil
}
