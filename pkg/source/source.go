// Package source loads protobuf text format input from files or stdin and
// classifies it so callers can warn about input in some other language.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// StdinName is the display name of input read from stdin.
const StdinName = "<stdin>"

// ErrInteractiveStdin is returned when input would be read from a terminal.
var ErrInteractiveStdin = errors.New("no input file given and stdin is a terminal")

// Input is one loaded document.
type Input struct {
	// Name is the file path, or StdinName.
	Name string

	// Content is the full input text.
	Content []byte

	// Language is the detected language, or "" when unknown.
	Language string
}

// IsStdin reports whether the input was read from stdin.
func (in *Input) IsStdin() bool {
	return in.Name == StdinName
}

// Warning returns a message when the input was classified as a language
// other than protobuf text format, or "" otherwise.
func (in *Input) Warning() string {
	if in.Language == "" || in.Language == LanguageTextFormat {
		return ""
	}
	return fmt.Sprintf("%s looks like %s, not protobuf text format", in.Name, in.Language)
}

// fdReader is implemented by *os.File.
type fdReader interface {
	io.Reader
	Fd() uintptr
}

// Load reads path, or stdin when path is "" or "-", and classifies it.
// Reading from an interactive terminal is refused with ErrInteractiveStdin.
func Load(ctx context.Context, path string, stdin io.Reader) (*Input, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		name    string
		content []byte
		err     error
	)

	if path == "" || path == "-" {
		name = StdinName
		content, err = readStdin(stdin)
	} else {
		name = path
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", name, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Input{
		Name:     name,
		Content:  content,
		Language: Classify(name, content),
	}, nil
}

func readStdin(stdin io.Reader) ([]byte, error) {
	if stdin == nil {
		return nil, ErrInteractiveStdin
	}
	if f, ok := stdin.(fdReader); ok && term.IsTerminal(int(f.Fd())) {
		return nil, ErrInteractiveStdin
	}
	return io.ReadAll(stdin)
}
