package gitrepo

import (
	"fmt"
	"os"
	"path/filepath"

	logger "ghsync/internal/log"
	"ghsync/internal/sh"
)

// Backend performs the working-copy operations reconciliation needs. The
// production implementation shells out to the git executable; tests
// substitute a fake so no external processes run.
type Backend interface {
	Clone(url, path string) error
	Pull(path string) error
	Move(oldPath, newPath string) error
	Remove(path string) error
}

// GitCLI drives the locally installed git binary. Each operation blocks until
// the subprocess exits.
type GitCLI struct{}

func (GitCLI) Clone(url, path string) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	cloneCmd := fmt.Sprintf("git clone %s .", url)
	if _, err := sh.ExecuteShellCommand(sh.DirectoryPath(path), sh.ShellCommand(cloneCmd)); err != nil {
		// A failed clone must not leave the directory behind, or the
		// next run would try to pull a path that is not a working copy.
		if rmErr := os.RemoveAll(path); rmErr != nil {
			logger.Log.Errorf("Failed to remove %s after failed clone: %v", path, rmErr)
		}
		return fmt.Errorf("in %s, %s failed: %w", path, cloneCmd, err)
	}
	return nil
}

func (GitCLI) Pull(path string) error {
	if _, err := sh.ExecuteShellCommand(sh.DirectoryPath(path), "git pull --rebase"); err != nil {
		return fmt.Errorf("in %s, git pull --rebase failed: %w", path, err)
	}
	return nil
}

func (GitCLI) Move(oldPath, newPath string) error {
	if err := os.MkdirAll(filepath.Dir(newPath), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(newPath), err)
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("failed to move %s to %s: %w", oldPath, newPath, err)
	}
	return nil
}

func (GitCLI) Remove(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}
