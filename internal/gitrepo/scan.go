package gitrepo

import (
	"fmt"
	"os"
	"path/filepath"

	"ghsync/internal/color"
	logger "ghsync/internal/log"
)

// Scan walks the public/ and private/ subfolders of basePath and returns the
// working copies found there, sorted the way os.ReadDir yields them (by
// name, public before private).
//
// A repository present under both visibility folders is a configuration
// error: reconciliation could not decide which copy is authoritative, so the
// whole run must stop before any action executes.
func Scan(basePath string) ([]LocalRepo, error) {
	var repos []LocalRepo
	seen := map[string]Visibility{}

	for _, visibility := range Visibilities {
		folder := filepath.Join(basePath, string(visibility))
		entries, err := os.ReadDir(folder)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", folder, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				logger.Log.Debugf("Ignoring non-directory %s in %s", color.FgMagenta(entry.Name()), folder)
				continue
			}
			name := entry.Name()
			if !isWorkingCopy(filepath.Join(folder, name)) {
				logger.Log.Debugf("Ignoring %s in %s: no .git directory", color.FgMagenta(name), folder)
				continue
			}
			if other, ok := seen[name]; ok {
				return nil, fmt.Errorf("repository %q exists under both %s/ and %s/ in %s; remove one copy and re-run",
					name, other, visibility, basePath)
			}
			seen[name] = visibility
			repos = append(repos, LocalRepo{
				Name:       name,
				Visibility: visibility,
				Path:       filepath.Join(folder, name),
			})
		}
	}
	return repos, nil
}

// isWorkingCopy reports whether path holds a checked-out repository. A
// directory without .git, such as the remains of an interrupted clone, is
// treated as absent so the next run plans a fresh clone for it.
func isWorkingCopy(path string) bool {
	_, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil
}

// EnsureBasePath creates the base path and both visibility folders, failing
// with a pointed message when the target volume is missing or read-only.
func EnsureBasePath(basePath string) error {
	for _, visibility := range Visibilities {
		folder := filepath.Join(basePath, string(visibility))
		if err := os.MkdirAll(folder, os.ModePerm); err != nil {
			return fmt.Errorf("cannot create %s: ensure the volume is mounted and writable: %w", folder, err)
		}
	}
	return nil
}
