package terminalView

import (
	"fmt"
	"io"
	"strings"
	"time"

	"ghsync/internal/color"
	"ghsync/internal/view"
)

// SyncView renders the running action counters.
type SyncView struct {
	viewModel *SyncViewModel
	stdout    io.Writer
}

func NewSyncView(vm *SyncViewModel, stdout io.Writer) *SyncView {
	return &SyncView{
		viewModel: vm,
		stdout:    stdout,
	}
}

func (v SyncView) Render(width int) int {
	vm := v.viewModel
	out := fmt.Sprintf("%s repositories on remote, %s of %s actions done\n%s cloned, %s updated, %s moved, %s deleted\n",
		color.FgMagenta(fmt.Sprintf("%d", vm.RemoteCount.Count())),
		color.FgMagenta(fmt.Sprintf("%d", vm.DoneCount.Count())),
		color.FgMagenta(fmt.Sprintf("%d", vm.PlannedCount.Count())),
		color.FgMagenta(fmt.Sprintf("%d", vm.ClonedCount.Count())),
		color.FgMagenta(fmt.Sprintf("%d", vm.UpdatedCount.Count())),
		color.FgMagenta(fmt.Sprintf("%d", vm.MovedCount.Count())),
		color.FgMagenta(fmt.Sprintf("%d", vm.DeletedCount.Count())))
	if latest := vm.LatestAction(); latest != "" {
		out += view.TruncateTextToWidth(width, latest) + "\n"
	}
	_, err := fmt.Fprint(v.stdout, out)
	if err != nil {
		return 0
	}
	return strings.Count(out, "\n")
}

// SyncCommandView is the composite the render loop draws: counters, error
// footer, elapsed time.
type SyncCommandView struct {
	compositeView *view.CompositeView
	stdout        io.Writer
}

func NewSyncCommandView(vm *SyncViewModel, stdout io.Writer) *SyncCommandView {
	startTime := time.Now()

	compositeView := view.NewCompositeView(make([]view.View, 0))
	compositeView.AddView(NewSyncView(vm, stdout))
	compositeView.AddFooter(view.NewErrorView(vm.ErrorViewModel, stdout))
	compositeView.AddFooter(view.NewTimeElapsedView(startTime, stdout, time.Since))

	return &SyncCommandView{
		compositeView: compositeView,
		stdout:        stdout,
	}
}

func (c SyncCommandView) Render(width int) (lines int) {
	return c.compositeView.Render(width)
}

func (c SyncCommandView) RenderNonTTY() {
	_, err := fmt.Fprintln(c.stdout, "Sync done")
	if err != nil {
		return
	}
	c.compositeView.Render(80)
}
