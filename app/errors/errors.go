package errors

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
)

// Log logs an error using the default slog logger, extracting the cause and
// metadata as fields if it's a StructuredError.
func Log(err error) {
	var serr *StructuredError
	if !errors.As(err, &serr) {
		slog.Error(err.Error())
		return
	}

	args := make([]any, 0, len(serr.metadata)*2+2)
	if serr.cause != nil {
		args = append(args, "cause", serr.cause)
	}

	keys := make([]string, 0, len(serr.metadata))
	for k := range serr.metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		args = append(args, k, serr.metadata[k])
	}

	slog.Error(serr.Error(), args...)
}

// Print writes a user-facing representation of err to w, prefixed with
// "Error:". For a StructuredError the cause is appended to the message.
func Print(w io.Writer, err error) {
	msg := err.Error()
	var serr *StructuredError
	if errors.As(err, &serr) && serr.cause != nil {
		msg = fmt.Sprintf("%s: %v", serr.Error(), serr.cause)
	}
	fmt.Fprintf(w, "Error: %s\n", msg)
}
