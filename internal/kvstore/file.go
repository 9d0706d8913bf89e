package kvstore

import (
	"context"
	"os"
	"path/filepath"
)

// FileDir stores one file per key under a directory, the closest server
// side analogue of browser local storage. Writes go through a temp file
// and rename so a crash never leaves a half-written document.
type FileDir struct {
	dir string
}

func NewFileDir(dir string) (*FileDir, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileDir{dir: dir}, nil
}

func (f *FileDir) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileDir) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (f *FileDir) Set(_ context.Context, key string, value []byte) error {
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path(key))
}

func (f *FileDir) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
