package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

const (
	dirPerm       = 0o755
	tempPrefix    = ".mirror-"
	rootLocalPath = "."
)

// rootFS is the part of an unrooted filesystem needed to manage the mirror
// directory itself.
type rootFS interface {
	Stat(filename string) (os.FileInfo, error)
	MkdirAll(filename string, perm os.FileMode) error
}

// billyMirror implements [Mirror] on a go-billy filesystem chrooted at the
// mirror directory.
type billyMirror struct {
	root string
	fs   billy.Filesystem
	host rootFS
}

// NewMirror returns a [Mirror] rooted at dir. The directory does not have to
// exist yet; see [Mirror.EnsureRoot].
func NewMirror(dir string) (Mirror, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve mirror root %q: %w", dir, err)
	}

	return newBillyMirror(root, osfs.New(root), osfs.Default), nil
}

func newBillyMirror(root string, fsys billy.Filesystem, host rootFS) *billyMirror {
	return &billyMirror{root: root, fs: fsys, host: host}
}

func (m *billyMirror) Root() string {
	return m.root
}

func (m *billyMirror) RootExists() (bool, error) {
	info, err := m.host.Stat(m.root)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat mirror root: %w", err)
	}
	if !info.IsDir() {
		return true, fmt.Errorf("%w: %s", ErrRootNotDirectory, m.root)
	}
	return true, nil
}

func (m *billyMirror) EnsureRoot() error {
	if err := m.host.MkdirAll(m.root, dirPerm); err != nil {
		return fmt.Errorf("create mirror root: %w", err)
	}
	return nil
}

func (m *billyMirror) Stat(p string) (os.FileInfo, error) {
	return m.fs.Stat(p)
}

func (m *billyMirror) MkdirAll(p string) error {
	info, err := m.fs.Stat(p)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrNotDirectory, p)
		}
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return m.fs.MkdirAll(p, dirPerm)
}

func (m *billyMirror) Open(p string) (io.ReadCloser, error) {
	return m.fs.Open(p)
}

func (m *billyMirror) Save(p string, r io.Reader, mtime time.Time) error {
	dir := path.Dir(p)
	if dir != rootLocalPath {
		if err := m.fs.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("%w: create parent: %v", ErrSavingFile, err)
		}
	}

	tmp, err := m.fs.TempFile(dir, tempPrefix)
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrSavingFile, err)
	}
	tmpName := tmp.Name()

	if _, err = io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		_ = m.fs.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrSavingFile, err)
	}
	if err = tmp.Close(); err != nil {
		_ = m.fs.Remove(tmpName)
		return fmt.Errorf("%w: close temp file: %v", ErrSavingFile, err)
	}

	if err = m.fs.Rename(tmpName, p); err != nil {
		_ = m.fs.Remove(tmpName)
		return fmt.Errorf("%w: rename: %v", ErrSavingFile, err)
	}

	if mtime.IsZero() {
		return nil
	}
	return m.Chtimes(p, mtime)
}

// Chtimes uses billy.Change when the filesystem offers it and the OS
// otherwise; chroot helpers do not forward Chtimes.
func (m *billyMirror) Chtimes(p string, mtime time.Time) error {
	if change, ok := m.fs.(billy.Change); ok {
		return change.Chtimes(p, mtime, mtime)
	}
	return os.Chtimes(filepath.Join(m.root, filepath.FromSlash(p)), mtime, mtime)
}
