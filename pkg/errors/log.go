package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to a writer.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out receives the log lines. Nil means stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out == nil {
		return os.Stderr
	}
	return h.Out
}

// HandleError logs an Error.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[progressring error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
		return
	}
	fmt.Fprintf(w, "[progressring error] %s: %v\n", err.Op, err.Err)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[progressring panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[progressring panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
