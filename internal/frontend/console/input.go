package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// Prompt is shown before each command.
const Prompt = "> "

// Reader yields one trimmed, non-blank command line per call.
type Reader interface {
	// ReadCommand blocks until a non-blank line is read. At end of input
	// it returns "" and io.EOF.
	ReadCommand() (string, error)
	Close() error
}

// DirectReader reads commands from any io.Reader without line editing.
// It is used for piped input and scripted sessions.
type DirectReader struct {
	r *bufio.Reader
}

// NewDirectReader opens a buffered reader on r.
func NewDirectReader(r io.Reader) *DirectReader {
	return &DirectReader{r: bufio.NewReader(r)}
}

// ReadCommand returns the next non-blank line.
//
// Postcondition: the returned line is trimmed; it is empty only with a non-nil error.
func (d *DirectReader) ReadCommand() (string, error) {
	var line string
	var err error
	for line == "" {
		line, err = d.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line == "" && err == io.EOF {
			return "", io.EOF
		}
	}
	return line, nil
}

// Close releases nothing; it exists to satisfy Reader.
func (d *DirectReader) Close() error { return nil }

// InteractiveReader reads commands from the terminal with line editing and
// history.
type InteractiveReader struct {
	rl *readline.Instance
}

// NewInteractiveReader initializes readline on stdin.
//
// Postcondition: the caller must Close the returned reader.
func NewInteractiveReader() (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          Prompt,
		HistoryLimit:    200,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}
	return &InteractiveReader{rl: rl}, nil
}

// ReadCommand returns the next non-blank line. Ctrl-C is reported as io.EOF.
func (i *InteractiveReader) ReadCommand() (string, error) {
	var line string
	var err error
	for line == "" {
		line, err = i.rl.Readline()
		if err == readline.ErrInterrupt {
			return "", io.EOF
		}
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		line = strings.TrimSpace(line)
	}
	return line, nil
}

// Close tears down readline and restores the terminal.
func (i *InteractiveReader) Close() error {
	return i.rl.Close()
}
