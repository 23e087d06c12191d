package store

import (
	"os"
	"strconv"

	"tinygo.org/x/tinyfs"
)

// FS persists values on a tinyfs filesystem (littlefs on raw flash, fatfs on
// an SD card), one single-byte file per id under a directory. Writes happen
// at user pace, one per completed button action, so no batching or journal
// is attempted; a torn write loses at most the last change.
//
// The filesystem must already be mounted. I/O errors are swallowed after an
// optional log callback: the menu must keep running on a dying flash chip.
type FS struct {
	fs  tinyfs.Filesystem
	dir string

	// OnError, if set, is told about I/O failures. Useful for logging.
	OnError func(op string, err error)
}

// NewFS builds a store rooted at dir (e.g. "/settings") on a mounted
// filesystem. The directory is created if missing.
func NewFS(fsys tinyfs.Filesystem, dir string) *FS {
	s := &FS{fs: fsys, dir: dir}
	// best effort; fails harmlessly when the directory already exists
	_ = fsys.Mkdir(dir, 0o777)
	return s
}

func (s *FS) path(id uint16) string {
	return s.dir + "/" + strconv.FormatUint(uint64(id), 16)
}

func (s *FS) fail(op string, err error) {
	if s.OnError != nil {
		s.OnError(op, err)
	}
}

func (s *FS) read(id uint16) (uint8, bool) {
	f, err := s.fs.OpenFile(s.path(id), os.O_RDONLY)
	if err != nil {
		return 0, false
	}
	var buf [1]byte
	n, err := f.Read(buf[:])
	cerr := f.Close()
	if err != nil || n != 1 {
		s.fail("read", err)
		return 0, false
	}
	if cerr != nil {
		s.fail("close", cerr)
	}
	return buf[0], true
}

func (s *FS) write(id uint16, v uint8) {
	f, err := s.fs.OpenFile(s.path(id), os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		s.fail("open", err)
		return
	}
	if _, err := f.Write([]byte{v}); err != nil {
		s.fail("write", err)
	}
	if err := f.Close(); err != nil {
		s.fail("close", err)
	}
}

func (s *FS) Exists(id uint16) bool {
	_, ok := s.read(id)
	return ok
}

func (s *FS) GetBool(id uint16, def bool) bool {
	v, ok := s.read(id)
	if !ok {
		return def
	}
	return v != 0
}

func (s *FS) GetInt(id uint16, def uint8) uint8 {
	v, ok := s.read(id)
	if !ok {
		return def
	}
	return v
}

func (s *FS) PutBool(id uint16, v bool) {
	var b uint8
	if v {
		b = 1
	}
	s.write(id, b)
}

func (s *FS) PutInt(id uint16, v uint8) {
	s.write(id, v)
}

func (s *FS) Remove(id uint16) {
	// a missing file is not an error here
	_ = s.fs.Remove(s.path(id))
}
