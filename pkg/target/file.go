package target

import (
	"os"

	"github.com/arthur-debert/rxpipe/pkg/errors"
	"github.com/arthur-debert/rxpipe/pkg/filesystem"
)

// File is a file on disk, optionally limited to a range of lines
type File struct {
	fs    filesystem.FS
	path  string
	lines *LineRange

	loaded bool
	text   string
	mode   os.FileMode
}

// NewFile returns a target for path. A nil lines selects nothing.
func NewFile(fsys filesystem.FS, path string, lines *LineRange) *File {
	return &File{fs: fsys, path: path, lines: lines}
}

func (f *File) Name() string {
	if f.lines != nil {
		return f.path + ":" + f.lines.String()
	}
	return f.path
}

func (f *File) load() error {
	if f.loaded {
		return nil
	}

	info, err := f.fs.Stat(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrNoActiveTarget, "file %s does not exist", f.path)
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to access %s", f.path)
	}
	if info.IsDir() {
		return errors.Newf(errors.ErrNoActiveTarget, "%s is a directory", f.path)
	}

	data, err := f.fs.ReadFile(f.path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", f.path)
	}

	f.text = string(data)
	f.mode = info.Mode().Perm()
	f.loaded = true
	return nil
}

func (f *File) Text() (string, error) {
	if err := f.load(); err != nil {
		return "", err
	}
	return f.text, nil
}

func (f *File) SetText(text string) error {
	if err := f.load(); err != nil {
		return err
	}
	if err := f.fs.WriteFile(f.path, []byte(text), f.mode); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", f.path)
	}
	f.text = text
	return nil
}

func (f *File) Selection() (string, bool, error) {
	if f.lines == nil {
		return "", false, nil
	}
	if err := f.load(); err != nil {
		return "", false, err
	}
	from, to, err := f.lines.bounds(f.text)
	if err != nil {
		return "", false, err
	}
	return f.text[from:to], true, nil
}

func (f *File) ReplaceSelection(text string) error {
	if f.lines == nil {
		return f.SetText(text)
	}
	if err := f.load(); err != nil {
		return err
	}
	from, to, err := f.lines.bounds(f.text)
	if err != nil {
		return err
	}
	return f.SetText(f.text[:from] + text + f.text[to:])
}
