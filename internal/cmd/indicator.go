package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/mattn/go-isatty"
)

type fdWriter interface {
	Fd() uintptr
}

// isTTY reports whether out is a terminal, independent of its color support.
func isTTY(out io.Writer) bool {
	f, ok := out.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func startLoadIndicator(ctx *Context) func() {
	if ctx == nil || ctx.Err == nil || ctx.UI == nil {
		return nil
	}
	if !isTTY(ctx.Err) {
		return nil
	}

	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		start := time.Now()
		frames := []string{"|", "/", "-", "\\"}
		ticker := time.NewTicker(120 * time.Millisecond)
		defer ticker.Stop()
		index := 0

		for {
			select {
			case <-done:
				fmt.Fprint(ctx.Err, "\r\033[2K")
				return
			case <-ticker.C:
				frame := frames[index%len(frames)]
				fmt.Fprintf(ctx.Err, "\r\033[2KLoading jobs... %.1fs %s", time.Since(start).Seconds(), frame)
				index++
			}
		}
	}()

	return func() {
		close(done)
		<-stopped
	}
}
