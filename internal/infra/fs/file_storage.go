package fs

import (
	"fmt"
	"io"
	"os"

	logging "sample-report/internal/infra/log"

	"go.uber.org/zap"
)

// EnsureDir creates dir and any missing parents. Existing dirs are fine.
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	logging.LogDebug("Output directory ready", zap.String("dir", dir))
	return nil
}

// WriteImage truncates or creates path, streams the encoder output into it
// and returns the final file size. A failed encode or an empty result
// leaves no file behind.
func WriteImage(path string, encode func(w io.Writer) error) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := encode(f); err != nil {
		f.Close()
		os.Remove(path)
		return 0, fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("failed to close %s: %w", path, err)
	}

	fileInfo, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if fileInfo.Size() == 0 {
		os.Remove(path)
		logging.LogError("Image file is empty after rendering", zap.String("filename", path))
		return 0, fmt.Errorf("image file %s is empty after rendering", path)
	}

	return fileInfo.Size(), nil
}
