package view

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	"ghsync/internal/color"
	"ghsync/internal/ext"
)

func TestErrorView_RendersNothingWithoutErrors(t *testing.T) {
	var buf bytes.Buffer
	errorView := NewErrorView(NewErrorViewModel("/tmp/ghsync.log"), &buf)

	lines := errorView.Render(80)

	if lines != 0 {
		t.Errorf("expected 0 lines, got %d", lines)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestErrorView_RendersErrorCountAndLogPath(t *testing.T) {
	var buf bytes.Buffer
	viewModel := NewErrorViewModel("/tmp/ghsync.log")
	errorView := NewErrorView(viewModel, &buf)

	viewModel.ErrorChannel <- errors.New("simulated git failure")
	viewModel.ErrorChannel <- errors.New("another failure")
	waitForErrorCount(t, viewModel, 2)

	lines := errorView.Render(80)

	expected := fmt.Sprintf("--- %s errors ---\nSee log file:\n%s\n",
		color.FgRed("2"),
		color.FgMagenta(ext.ReplaceHomeDirWithTilde("/tmp/ghsync.log")))
	if buf.String() != expected {
		t.Errorf("Render() output mismatch.\nExpected:\n%q\nGot:\n%q", expected, buf.String())
	}
	if lines != 3 {
		t.Errorf("expected 3 lines, got %d", lines)
	}
}

// The channel consumer runs in its own goroutine; poll until it has caught up.
func waitForErrorCount(t *testing.T, vm *ErrorViewModel, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if vm.errorCount.Count() >= want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("error count never reached %d", want)
}
