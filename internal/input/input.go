// Package input loads whole puzzle inputs as UTF-8 text.
package input

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrNotUTF8 is returned for inputs that are not valid UTF-8.
var ErrNotUTF8 = errors.New("input is not valid UTF-8")

// DefaultPattern names the input file of a day inside the input directory.
const DefaultPattern = "day%d.txt"

// Path resolves the input file of day inside dir. An empty pattern means
// DefaultPattern.
func Path(dir, pattern string, day int) string {
	if pattern == "" {
		pattern = DefaultPattern
	}
	return filepath.Join(dir, fmt.Sprintf(pattern, day))
}

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// open handles "-" (stdin) and gzip, detected by magic number or .gz suffix.
func open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

// Load reads the whole of path into memory.
func Load(path string) (string, error) {
	rc, err := open(path)
	if err != nil {
		return "", err
	}
	defer rc.Close()
	return Read(rc)
}

// Read drains r and validates the text.
func Read(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrNotUTF8
	}
	return string(b), nil
}
