package target

import (
	"io"

	"github.com/arthur-debert/rxpipe/pkg/errors"
)

// Stdio reads its text from a reader once and writes the result to a writer
type Stdio struct {
	in  io.Reader
	out io.Writer

	loaded bool
	text   string
}

// NewStdio returns a target reading from in and writing to out
func NewStdio(in io.Reader, out io.Writer) *Stdio {
	return &Stdio{in: in, out: out}
}

func (s *Stdio) Name() string {
	return "stdin"
}

func (s *Stdio) Text() (string, error) {
	if s.loaded {
		return s.text, nil
	}
	if s.in == nil {
		return "", errors.New(errors.ErrNoActiveTarget, "no input available")
	}
	data, err := io.ReadAll(s.in)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "failed to read input")
	}
	s.text = string(data)
	s.loaded = true
	return s.text, nil
}

func (s *Stdio) SetText(text string) error {
	if _, err := io.WriteString(s.out, text); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write output")
	}
	s.text = text
	s.loaded = true
	return nil
}

// Selection is never set for streams
func (s *Stdio) Selection() (string, bool, error) {
	return "", false, nil
}

func (s *Stdio) ReplaceSelection(text string) error {
	return s.SetText(text)
}
