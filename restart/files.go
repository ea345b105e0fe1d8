/*
 * files.go, part of gopimc.
 *
 * Copyright 2026 The gopimc authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package restart

import (
	"bufio"
	"compress/gzip"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	pimc "github.com/gopimc/pimc"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"
)

const (
	plain = "rs"
	gz    = "gz"
	zst   = "zst"
)

//compression returns the compression format for the file name, from its extension.
//.zst and .zstd are zstd, .gz is gzip. .rs, or no extension at all, is a plain
//restart file. Any other extension is logged, and the file is taken as plain.
func compression(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".zst", ".zstd":
		return zst
	case ".gz":
		return gz
	case ".rs", "":
		return plain
	default:
		log.Printf("Extension %s not supported. %s will be assumed to be a plain restart file", ext, name)
		return plain
	}
}

//zstdReadCloser adapts *zstd.Decoder, whose Close returns nothing.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//readAll reads the whole file, decompressing it if needed.
func readAll(name string) ([]byte, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.ReadCloser
	switch compression(name) {
	case zst:
		d, err := zstd.NewReader(bufio.NewReader(f))
		if err != nil {
			return nil, err
		}
		r = zstdReadCloser{d}
	case gz:
		r, err = gzip.NewReader(bufio.NewReader(f))
		if err != nil {
			return nil, err
		}
	default:
		r = io.NopCloser(f)
	}
	defer r.Close()
	return io.ReadAll(r)
}

// ReadFile reads the restart file name, which can be compressed (see WriteFile),
// and returns the path it contains. tol is as in Decode.
func ReadFile(name string, ndim, nparts, nslices int, tol ...float64) (*pimc.Path, error) {
	b, err := readAll(name)
	if err != nil {
		return nil, pimc.NewFileError(err, name, "ReadFile")
	}
	P, err := decode(b, name, ndim, nparts, nslices, tol...)
	return P, pimc.ErrDecorate(err, "ReadFile")
}

// ReadFileHeader returns the header of the restart file name.
func ReadFileHeader(name string) (*Header, error) {
	b, err := readAll(name)
	if err != nil {
		return nil, pimc.NewFileError(err, name, "ReadFileHeader")
	}
	h, err := DecodeHeader(b)
	if err != nil {
		return nil, pimc.NewFormatError(Truncated, name, "ReadFileHeader")
	}
	return h, nil
}

// WriteFile writes h and P to the file name as a restart file. Files with
// the extension .zst (or .zstd) are compressed with zstd, .gz files with gzip.
// Anything else is written uncompressed.
func WriteFile(name string, h *Header, P *pimc.Path) error {
	f, err := os.Create(name)
	if err != nil {
		return pimc.NewFileError(err, name, "WriteFile")
	}
	var w io.WriteCloser
	switch compression(name) {
	case zst:
		w, err = zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return pimc.NewFileError(err, name, "WriteFile")
		}
	case gz:
		w = gzip.NewWriter(f)
	}
	if w == nil {
		_, err = f.Write(Encode(h, P))
	} else {
		_, err = w.Write(Encode(h, P))
		//w must be closed even if Write failed.
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return pimc.NewFileError(err, name, "WriteFile")
	}
	return nil
}

// ReadFiles reads several restart files with the same extents concurrently,
// with at most workers files read at the same time (no limit if workers < 1).
// The paths are returned in the order of names. The first error stops the
// reading of files not yet started, and is returned.
func ReadFiles(ctx context.Context, ndim, nparts, nslices, workers int, names ...string) ([]*pimc.Path, error) {
	ret := make([]*pimc.Path, len(names))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			P, err := ReadFile(name, ndim, nparts, nslices)
			if err != nil {
				return pimc.ErrDecorate(err, "ReadFiles")
			}
			ret[i] = P
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ret, nil
}
