package filesystem

import (
	"context"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/afero"
)

// FS is the storage used for rulesets, the index and file targets
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
	Remove(name string) error

	// Lock takes an exclusive lock for name and returns its release function
	Lock(ctx context.Context, name string) (func(), error)
}

const lockRetryDelay = 50 * time.Millisecond

// aferoFS implements FS on top of an afero.Fs
type aferoFS struct {
	fs     afero.Fs
	locker locker
}

type locker interface {
	lock(ctx context.Context, name string) (func(), error)
}

// NewOS returns the OS filesystem. Locks are flock(2) style locks on a
// "<name>.lock" file next to the locked file.
func NewOS() FS {
	return &aferoFS{fs: afero.NewOsFs(), locker: fileLocker{}}
}

// NewMemory returns an empty in-memory filesystem
func NewMemory() FS {
	return New(afero.NewMemMapFs())
}

// New wraps any afero filesystem. Locks only exclude other users of the
// returned FS.
func New(base afero.Fs) FS {
	return &aferoFS{fs: base, locker: &memLocker{held: map[string]*sync.Mutex{}}}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

// WriteFile writes through a temporary file in the same directory and
// renames it into place, so readers never see a partial file.
func (a *aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	tmp, err := afero.TempFile(a.fs, filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = a.fs.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = a.fs.Remove(tmpName)
		return err
	}
	if err := a.fs.Chmod(tmpName, perm); err != nil {
		_ = a.fs.Remove(tmpName)
		return err
	}
	if err := a.fs.Rename(tmpName, name); err != nil {
		_ = a.fs.Remove(tmpName)
		return err
	}
	return nil
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFS) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, err := afero.ReadDir(a.fs, name)
	if err != nil {
		return nil, err
	}
	dirEntries := make([]fs.DirEntry, len(entries))
	for i, entry := range entries {
		dirEntries[i] = fs.FileInfoToDirEntry(entry)
	}
	return dirEntries, nil
}

func (a *aferoFS) Remove(name string) error {
	return a.fs.Remove(name)
}

func (a *aferoFS) Lock(ctx context.Context, name string) (func(), error) {
	return a.locker.lock(ctx, name)
}

// fileLocker locks across processes
type fileLocker struct{}

func (fileLocker) lock(ctx context.Context, name string) (func(), error) {
	fl := flock.New(name + ".lock")
	ok, err := fl.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ctx.Err()
	}
	return func() { _ = fl.Unlock() }, nil
}

// memLocker locks within the process
type memLocker struct {
	mu   sync.Mutex
	held map[string]*sync.Mutex
}

func (m *memLocker) lock(ctx context.Context, name string) (func(), error) {
	m.mu.Lock()
	l, ok := m.held[name]
	if !ok {
		l = &sync.Mutex{}
		m.held[name] = l
	}
	m.mu.Unlock()

	for !l.TryLock() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryDelay):
		}
	}
	return l.Unlock, nil
}
