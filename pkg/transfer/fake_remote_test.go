package transfer

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"time"
)

// fakeRemoteFS is an in-memory remote filesystem for resolver, streamer and
// transferer tests.
type fakeRemoteFS struct {
	dirs  map[string]bool
	files map[string]*bytes.Buffer

	mkdirCalls []string
	statCalls  []string

	mkdirErrOn  string // path that fails Mkdir
	createErrOn string // path that fails Create
	shortWrite  bool   // writes report fewer bytes than given
}

func newFakeRemoteFS() *fakeRemoteFS {
	return &fakeRemoteFS{
		dirs:  map[string]bool{"/": true},
		files: map[string]*bytes.Buffer{},
	}
}

func (f *fakeRemoteFS) Stat(p string) (os.FileInfo, error) {
	f.statCalls = append(f.statCalls, p)
	if f.dirs[p] {
		return fakeFileInfo{name: path.Base(p), dir: true}, nil
	}
	if _, ok := f.files[p]; ok {
		return fakeFileInfo{name: path.Base(p)}, nil
	}
	return nil, fs.ErrNotExist
}

func (f *fakeRemoteFS) Mkdir(p string) error {
	f.mkdirCalls = append(f.mkdirCalls, p)
	if p == f.mkdirErrOn {
		return errors.New("permission denied")
	}
	if !f.dirs[path.Dir(p)] {
		return errors.New("no such file or directory")
	}
	f.dirs[p] = true
	return nil
}

func (f *fakeRemoteFS) Chmod(p string, mode os.FileMode) error {
	if !f.dirs[p] {
		return errors.New("no such file or directory")
	}
	return nil
}

func (f *fakeRemoteFS) Create(p string) (io.WriteCloser, error) {
	if p == f.createErrOn {
		return nil, errors.New("permission denied")
	}
	buf := &bytes.Buffer{}
	f.files[p] = buf
	return &fakeRemoteFile{buf: buf, short: f.shortWrite}, nil
}

type fakeRemoteFile struct {
	buf   *bytes.Buffer
	short bool
}

func (f *fakeRemoteFile) Write(p []byte) (int, error) {
	if f.short && len(p) > 1 {
		n, _ := f.buf.Write(p[:len(p)-1])
		return n, nil
	}
	return f.buf.Write(p)
}

func (f *fakeRemoteFile) Close() error { return nil }

type fakeFileInfo struct {
	name string
	dir  bool
}

func (i fakeFileInfo) Name() string       { return i.name }
func (i fakeFileInfo) Size() int64        { return 0 }
func (i fakeFileInfo) Mode() fs.FileMode  { return 0o755 }
func (i fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (i fakeFileInfo) IsDir() bool        { return i.dir }
func (i fakeFileInfo) Sys() any           { return nil }

// fakeSession satisfies the session interface for transferer tests.
type fakeSession struct {
	remote *fakeRemoteFS
	closed bool
}

func (s *fakeSession) fs() remoteFS { return s.remote }

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}
