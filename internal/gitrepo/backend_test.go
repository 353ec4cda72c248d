package gitrepo

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitCLI_FailedCloneLeavesNoDirectoryBehind(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	path := filepath.Join(t.TempDir(), "public", "gone")
	err := GitCLI{}.Clone("file:///nonexistent/gone.git", path)

	require.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "expected %s to be removed after the failed clone", path)
}
