package main

import (
	"fmt"
	"os"

	"github.com/eisenwave/cowel-sub001/internal/config"
	"github.com/eisenwave/cowel-sub001/internal/engine"
)

// rootedFileLoader implements engine.FileLoader for \cowel_include,
// restricting reads to cfg.Files.AllowedRoots and cfg.Files.MaxBytes
// (spec.md §6's File_Loader service, scoped by config per SPEC_FULL.md
// item 4).
type rootedFileLoader struct {
	cfg *config.Config
}

func newRootedFileLoader(cfg *config.Config) engine.FileLoader {
	return rootedFileLoader{cfg: cfg}
}

func (l rootedFileLoader) Load(path string) (engine.FileEntry, error) {
	if !l.cfg.IsRootAllowed(path) {
		return engine.FileEntry{}, fmt.Errorf("%q is outside the configured allowed roots", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return engine.FileEntry{}, fmt.Errorf("stat %q: %w", path, err)
	}
	if info.Size() > l.cfg.Files.MaxBytes {
		return engine.FileEntry{}, fmt.Errorf("%q is %d bytes, exceeding the %d byte limit", path, info.Size(), l.cfg.Files.MaxBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return engine.FileEntry{}, fmt.Errorf("read %q: %w", path, err)
	}
	return engine.FileEntry{ID: path, Source: string(data), Name: path}, nil
}
