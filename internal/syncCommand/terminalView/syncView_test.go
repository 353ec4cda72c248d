package terminalView

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	"ghsync/internal/color"
	"ghsync/internal/gitrepo"
	"ghsync/internal/reconcile"
	"ghsync/internal/view"
)

func TestSyncView_Render(t *testing.T) {
	viewModel := NewSyncViewModel("/tmp/ghsync.log")
	viewModel.RemoteCount.Add(12)
	viewModel.PlannedCount.Add(14)
	viewModel.ActionSucceeded(reconcile.KindClone, "a", gitrepo.VisibilityPublic)
	viewModel.ActionSucceeded(reconcile.KindClone, "b", gitrepo.VisibilityPublic)
	viewModel.ActionSucceeded(reconcile.KindUpdate, "c", gitrepo.VisibilityPrivate)
	viewModel.ActionSucceeded(reconcile.KindMove, "d", gitrepo.VisibilityPrivate)
	viewModel.ActionSucceeded(reconcile.KindDelete, "e", gitrepo.VisibilityPublic)

	var buf bytes.Buffer
	lines := NewSyncView(viewModel, &buf).Render(80)

	expected := fmt.Sprintf("%s repositories on remote, %s of %s actions done\n%s cloned, %s updated, %s moved, %s deleted\n%s\n",
		color.FgMagenta("12"),
		color.FgMagenta("5"),
		color.FgMagenta("14"),
		color.FgMagenta("2"),
		color.FgMagenta("1"),
		color.FgMagenta("1"),
		color.FgMagenta("1"),
		view.TruncateTextToWidth(80, "delete e"))

	if buf.String() != expected {
		t.Errorf("Render() output mismatch.\nExpected:\n%q\nGot:\n%q", expected, buf.String())
	}
	if lines != 3 {
		t.Errorf("expected 3 lines, got %d", lines)
	}
}

func TestSyncView_RenderWhileRecording(t *testing.T) {
	viewModel := NewSyncViewModel("/tmp/ghsync.log")
	viewModel.RemoteCount.Add(3)
	viewModel.PlannedCount.Add(100)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			viewModel.ActionSucceeded(reconcile.KindUpdate, fmt.Sprintf("repo-%d", i), gitrepo.VisibilityPublic)
		}
		close(done)
	}()

	// Draw continuously while the recorder is still reporting, the way
	// the render loop does during a run.
	syncView := NewSyncView(viewModel, &bytes.Buffer{})
	for {
		syncView.Render(80)
		select {
		case <-done:
			if got := viewModel.DoneCount.Count(); got != 100 {
				t.Errorf("expected 100 done actions, got %d", got)
			}
			if got := viewModel.LatestAction(); got != "update repo-99" {
				t.Errorf("expected latest action %q, got %q", "update repo-99", got)
			}
			return
		default:
		}
	}
}

func TestSyncViewModel_FailedActionFeedsErrorView(t *testing.T) {
	viewModel := NewSyncViewModel("/tmp/ghsync.log")

	viewModel.ActionFailed(reconcile.KindUpdate, "broken", gitrepo.VisibilityPublic, errors.New("simulated git failure"))

	if got := viewModel.DoneCount.Count(); got != 1 {
		t.Errorf("expected 1 done action, got %d", got)
	}

	// Without the footer the composite renders 4 lines (counters, latest
	// action, elapsed); the error footer adds 3 more once the channel
	// consumer caught up.
	var buf bytes.Buffer
	commandView := NewSyncCommandView(viewModel, &buf)
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		buf.Reset()
		if commandView.Render(80) > 4 {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("error footer never rendered")
}
