package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/protoview/internal/configloader"
	"github.com/yaklabco/protoview/pkg/query"
	"github.com/yaklabco/protoview/pkg/source"
)

// ErrNoMatch is returned when a query selects nothing. It only signals the
// exit code and is not reported as a failure.
var ErrNoMatch = errors.New("no match")

// Exit codes for protoview.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a generic failure, or a query without matches.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var (
		validationErr *configloader.ValidationError
		syntaxErr     *query.SyntaxError
		pathErr       *fs.PathError
	)

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrNoMatch):
		return ExitFailure
	case errors.As(err, &syntaxErr):
		return ExitInvalidUsage
	case errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, source.ErrInteractiveStdin), errors.As(err, &pathErr):
		return ExitIOError
	default:
		return ExitFailure
	}
}
