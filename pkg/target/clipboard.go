package target

import (
	"github.com/atotto/clipboard"

	"github.com/arthur-debert/rxpipe/pkg/errors"
)

// Clipboard is the system clipboard
type Clipboard struct {
	unsupported bool
	read        func() (string, error)
	write       func(string) error
}

// NewClipboard returns the system clipboard target
func NewClipboard() *Clipboard {
	return &Clipboard{
		unsupported: clipboard.Unsupported,
		read:        clipboard.ReadAll,
		write:       clipboard.WriteAll,
	}
}

func (c *Clipboard) Name() string {
	return "clipboard"
}

func (c *Clipboard) available() error {
	if c.unsupported {
		return errors.New(errors.ErrNoActiveTarget, "no clipboard utility available")
	}
	return nil
}

func (c *Clipboard) Text() (string, error) {
	if err := c.available(); err != nil {
		return "", err
	}
	text, err := c.read()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrNoActiveTarget, "failed to read clipboard")
	}
	return text, nil
}

func (c *Clipboard) SetText(text string) error {
	if err := c.available(); err != nil {
		return err
	}
	if err := c.write(text); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write clipboard")
	}
	return nil
}

// Selection is never set for the clipboard
func (c *Clipboard) Selection() (string, bool, error) {
	return "", false, nil
}

func (c *Clipboard) ReplaceSelection(text string) error {
	return c.SetText(text)
}
