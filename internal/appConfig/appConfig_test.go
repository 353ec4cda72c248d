package appConfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("basePath: /mnt/archive/github-repos\nlogFile: /var/log/ghsync.log\n"), 0644))

	config, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, "/mnt/archive/github-repos", config.BasePath)
	assert.Equal(t, "/var/log/ghsync.log", config.LogFile)
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("basePath: [unclosed"), 0644))

	_, err := LoadFile(path)

	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	config := &AppConfig{}
	require.NoError(t, config.ApplyDefaults())

	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, DefaultBaseDirName), config.BasePath)
	assert.Equal(t, DefaultLogFileName, config.LogFile)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	config := &AppConfig{BasePath: "/mnt/archive", LogFile: "custom.log"}
	require.NoError(t, config.ApplyDefaults())

	assert.Equal(t, "/mnt/archive", config.BasePath)
	assert.Equal(t, "custom.log", config.LogFile)
}
