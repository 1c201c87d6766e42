// SPDX-License-Identifier: MIT

package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unsafe"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/numeric/field"
)

var (
	// ErrOpen wraps any failure to open or decompress a dataset file.
	ErrOpen = errors.New("dataset: cannot open")

	// ErrParse indicates a token that is not a decimal number.
	ErrParse = errors.New("dataset: malformed number")

	// ErrEmpty indicates a sample set with no values.
	ErrEmpty = errors.New("dataset: no samples")
)

// Open returns a reader over the decompressed contents of path.
// The caller must Close it.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	switch ext := strings.ToLower(path); {
	case strings.HasSuffix(ext, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: %s: gzip: %w", ErrOpen, path, err)
		}
		return &chain{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case strings.HasSuffix(ext, ".zst"), strings.HasSuffix(ext, ".zstd"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: %s: zstd: %w", ErrOpen, path, err)
		}
		rc := zr.IOReadCloser()
		return &chain{Reader: rc, closers: []io.Closer{rc, f}}, nil
	default:
		return f, nil
	}
}

// chain closes a decompressor and then the file beneath it.
type chain struct {
	io.Reader
	closers []io.Closer
}

func (c *chain) Close() error {
	var errs []error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Read parses every whitespace-separated token of r as a T.
//
// Errors:
//   - ErrParse (with the zero-based token index) on the first bad token.
//   - any read error of r.
func Read[T field.Float](r io.Reader) ([]T, error) {
	var probe T
	bits := 64
	if unsafe.Sizeof(probe) == 4 {
		bits = 32
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var out []T
	for i := 0; sc.Scan(); i++ {
		v, err := strconv.ParseFloat(sc.Text(), bits)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q", ErrParse, i, sc.Text())
		}
		out = append(out, T(v))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// ReadFile opens path (see Open) and parses it with Read.
func ReadFile[T field.Float](path string) ([]T, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	samples, err := Read[T](rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return samples, nil
}
