package view

import (
	"fmt"
	"io"
	"strings"

	"ghsync/internal/color"
	"ghsync/internal/counter"
	"ghsync/internal/ext"
)

type ErrorViewModel struct {
	errorCount   *counter.Counter
	ErrorChannel chan error
	logFilePath  string
}

func NewErrorViewModel(logFilePath string) *ErrorViewModel {
	viewModel := ErrorViewModel{
		errorCount:   counter.NewCounter(),
		ErrorChannel: make(chan error, 1),
		logFilePath:  logFilePath,
	}
	go func() {
		for range viewModel.ErrorChannel {
			viewModel.errorCount.Add(1)
		}
	}()
	return &viewModel
}

type ErrorView struct {
	viewModel *ErrorViewModel
	stdout    io.Writer
}

func NewErrorView(vm *ErrorViewModel, stdout io.Writer) *ErrorView {
	return &ErrorView{
		viewModel: vm,
		stdout:    stdout,
	}
}

func (v ErrorView) Render(int) int {
	if v.viewModel.errorCount.Count() > 0 {
		out := fmt.Sprintf("--- %s errors ---\nSee log file:\n%s\n",
			color.FgRed(fmt.Sprintf("%d", v.viewModel.errorCount.Count())),
			color.FgMagenta(ext.ReplaceHomeDirWithTilde(v.viewModel.logFilePath)))

		_, err := fmt.Fprint(v.stdout, out)
		if err != nil {
			return 0
		}
		return strings.Count(out, "\n")
	}
	return 0
}
