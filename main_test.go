package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_HelpExitsZero(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"ghsync", "--help"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Mirror a GitHub account's repositories")
}

func TestRun_NoArgsShowsHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"ghsync"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "sync")
}

func TestRun_SyncRequiresUsername(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"ghsync", "sync"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "arg")
}

func TestRun_UnknownCommandExitsNonZero(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"ghsync", "frobnicate"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
}
