package parsers

import (
	"errors"
	"strings"
)

// ErrUnparsableFile is returned when every decode attempt fails. It is
// terminal for the upload; there is no retry inside the pipeline.
var ErrUnparsableFile = errors.New("could not parse file: ensure it is a valid CSV or Excel file")

// MissingColumnsError reports every canonical column still absent after
// header normalization and the synonym pass, so the caller can show one
// actionable message.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return "missing required columns: " + strings.Join(e.Missing, ", ")
}
