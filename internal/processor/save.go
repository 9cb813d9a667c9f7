package processor

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
)

// SaveFile writes data to path, creating the parent directory when needed.
// Data goes to a temporary file in the same directory which is renamed over
// path only once fully written and closed, so a failed save leaves any
// previous file untouched.
func SaveFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return eris.Wrapf(err, "save: create directory %s", dir)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return eris.Wrapf(err, "save: create temp file for %s", path)
	}
	tmp := f.Name()

	defer func() {
		if err == nil {
			return
		}
		if rmErr := os.Remove(tmp); rmErr != nil && !os.IsNotExist(rmErr) {
			log.Warn().Err(rmErr).Str("path", tmp).Msg("Failed to remove temp file")
		}
	}()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return eris.Wrapf(err, "save: write %s", path)
	}
	// Write errors may only surface on close.
	if err := f.Close(); err != nil {
		return eris.Wrapf(err, "save: close %s", path)
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		return eris.Wrapf(err, "save: chmod %s", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		return eris.Wrapf(err, "save: rename to %s", path)
	}
	return nil
}

// LoadFile reads a whole input file.
func LoadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "load: read %s", path)
	}
	return data, nil
}
