package pipeline

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/backmassage/channelsurf/internal/lineup"
)

// Discover lists the media files directly inside dir whose extension (case
// insensitive) is one of exts. Subdirectories are not descended. Names are
// returned sorted when sorted is true; otherwise in the order the
// filesystem lists them.
func Discover(dir string, exts []string, sorted bool) ([]string, error) {
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s", lineup.ErrDirectoryNotFound, dir)
	}

	entries, err := readDirRaw(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot list %s: %w", dir, err)
	}

	want := make(map[string]bool, len(exts))
	for _, e := range exts {
		want[strings.ToLower(e)] = true
	}

	var files []string
	for _, e := range entries {
		if !want[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		if isDir(dir, e) {
			continue
		}
		files = append(files, e.Name())
	}
	if sorted {
		sort.Strings(files)
	}
	return files, nil
}

// readDirRaw returns directory entries without the sorting os.ReadDir does.
func readDirRaw(dir string) ([]fs.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.ReadDir(-1)
}

// isDir reports whether e is a directory, following symlinks.
func isDir(dir string, e fs.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && fi.IsDir()
}
