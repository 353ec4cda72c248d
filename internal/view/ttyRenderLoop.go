package view

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

const renderRefreshRate = 100 * time.Millisecond

// StartTTYRenderLoop redraws the view in place until the context is canceled.
// file must be a terminal; IsTTY decides that at the call site.
func StartTTYRenderLoop(ctx context.Context, r View, out io.Writer, file *os.File) {
	lineCount := r.Render(terminalWidth(file))

	for {
		select {
		case <-ctx.Done():
			return
		default:
			_, err := fmt.Fprint(out, ansiLineOffset(lineCount))
			if err != nil {
				return
			}
			lineCount = r.Render(terminalWidth(file))
			time.Sleep(renderRefreshRate)
		}
	}
}

// IsTTY reports whether the file is attached to a terminal.
func IsTTY(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

func terminalWidth(file *os.File) int {
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
