package cluster

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the input path does not resolve to a readable file.
	ErrNotFound = errors.New("cluster file not found")
	// ErrMalformed means the input does not follow the cluster file format.
	ErrMalformed = errors.New("cluster file malformed")
)

// LineError reports the first line that could not be parsed.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Is makes every LineError match ErrMalformed.
func (e *LineError) Is(target error) bool { return target == ErrMalformed }

// Guidance turns a read error into a short header and an actionable message for the user.
func Guidance(err error, path string) (header, detail string) {
	switch {
	case errors.Is(err, ErrNotFound):
		return "Missing " + path,
			fmt.Sprintf("The file %s could not be found.\n"+
				"Place it in the current working directory (or pass its path) and start again.", path)
	case errors.Is(err, ErrMalformed):
		return "Corrupt " + path,
			fmt.Sprintf("The file %s appears to be corrupt or does not follow the cluster format:\n"+
				"  %v\n"+
				"Each data line needs an x value, a y value and a cluster name, e.g. \"12.5  8,0  A1\".", path, err)
	default:
		return "Cannot read " + path, err.Error()
	}
}
