package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/channelsurf/internal/lineup"
)

// WriteFile replaces path with data. The bytes go to a temporary file in
// the same directory which is renamed over path only after a successful
// sync, so a failed write never leaves a truncated file behind. An existing
// file keeps its permission bits; a new one gets 0644.
// Errors wrap [lineup.ErrOutputWrite].
func WriteFile(path string, data []byte) (err error) {
	mode := os.FileMode(0o644)
	if fi, statErr := os.Stat(path); statErr == nil {
		mode = fi.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", lineup.ErrOutputWrite, path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("%w: %s: %w", lineup.ErrOutputWrite, path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: %s: %w", lineup.ErrOutputWrite, path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", lineup.ErrOutputWrite, path, err)
	}
	if err = os.Chmod(tmp.Name(), mode); err != nil {
		return fmt.Errorf("%w: %s: %w", lineup.ErrOutputWrite, path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %s: %w", lineup.ErrOutputWrite, path, err)
	}
	return nil
}
