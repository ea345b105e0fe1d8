/*
 * restart_test.go, part of gopimc.
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
	"context"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	pimc "github.com/gopimc/pimc"
	"gonum.org/v1/gonum/floats"
)

func testHeader() *Header {
	h := new(Header)
	copy(h.Marker[:], []byte{0x23, 0, 0, 0})
	copy(h.Discretization[:], "       64")
	copy(h.Timing[:], "  12.3456789012345  0.0001")
	return h
}

func testPath(Te *testing.T, ndim, nparts, nslices int) *pimc.Path {
	P, err := pimc.NewPathFunc(ndim, nparts, nslices, func(d, p, s int) float64 {
		return math.Sin(float64(1+d+7*p+31*s)) * 3.7
	})
	if err != nil {
		Te.Fatal(err)
	}
	return P
}

func isFormatError(err error, message string) bool {
	var fe *pimc.FormatError
	return errors.As(err, &fe) && strings.HasPrefix(fe.Message(), message)
}

func TestEncodeDecode(Te *testing.T) {
	P := testPath(Te, 3, 5, 4)
	b := Encode(testHeader(), P)
	if len(b) != 4+35+8+8*60+8 {
		Te.Fatalf("encoded length %d", len(b))
	}
	//payload by hand: element (d=1, p=2, s=3) is double number 1+3*(2+5*3)
	if v := math.Float64frombits(binary.LittleEndian.Uint64(b[47+8*52:])); v != P.At(1, 2, 3) {
		Te.Errorf("element (1,2,3) encoded as %v, expected %v", v, P.At(1, 2, 3))
	}
	P2, err := Decode(b, 3, 5, 4)
	if err != nil {
		Te.Fatal(err)
	}
	d, d2 := P.Data(), P2.Data()
	for i := range d {
		if math.Float64bits(d[i]) != math.Float64bits(d2[i]) {
			Te.Fatalf("element %d: %v decoded as %v", i, d[i], d2[i])
		}
	}
	h, err := DecodeHeader(b)
	if err != nil {
		Te.Fatal(err)
	}
	if *h != *testHeader() {
		Te.Errorf("header %+v, expected %+v", h, testHeader())
	}
	//trailing bytes are ignored
	if _, err := Decode(append(b, 1, 2, 3), 3, 5, 4); err != nil {
		Te.Error(err)
	}
}

func TestDecodeTruncated(Te *testing.T) {
	b := Encode(nil, testPath(Te, 2, 3, 2))
	for _, l := range []int{0, 10, 47, len(b) - 8, len(b) - 1} {
		if _, err := Decode(b[:l], 2, 3, 2); !isFormatError(err, Truncated) {
			Te.Errorf("length %d: expected a truncated FormatError, got %v", l, err)
		}
	}
	//the extents are checked against the buffer, not guessed from it
	if _, err := Decode(b, 2, 3, 3); !isFormatError(err, Truncated) {
		Te.Errorf("expected a truncated FormatError for extents too large, got %v", err)
	}
	if _, err := Decode(b, 0, 3, 2); !isFormatError(err, BadExtents) {
		Te.Errorf("expected a FormatError for zero extents, got %v", err)
	}
	//extents whose file size doesn't fit in an int
	for _, e := range [][3]int{{1, math.MaxInt / 8, 1}, {2, math.MaxInt / 16, 4}, {1, math.MaxInt, 2}} {
		if _, err := Decode(make([]byte, 64), e[0], e[1], e[2]); !isFormatError(err, Truncated) {
			Te.Errorf("extents %v: expected a truncated FormatError, got %v", e, err)
		}
	}
	if _, err := DecodeHeader(b[:38]); !isFormatError(err, Truncated) {
		Te.Errorf("expected a truncated FormatError for a short header, got %v", err)
	}
}

func TestDecodeCorruptPadding(Te *testing.T) {
	good := Encode(testHeader(), testPath(Te, 3, 2, 2))
	end := 47 + 8*12
	cases := map[string]struct {
		offset int
		value  float64
	}{
		"leading":  {39, 1e-3},
		"trailing": {end, -1},
		"nan":      {end, math.NaN()},
	}
	for name, c := range cases {
		b := make([]byte, len(good))
		copy(b, good)
		binary.LittleEndian.PutUint64(b[c.offset:], math.Float64bits(c.value))
		_, err := Decode(b, 3, 2, 2)
		if !isFormatError(err, CorruptPadding) {
			Te.Errorf("%s: expected a corrupt padding FormatError, got %v", name, err)
		}
	}
	//tiny paddings are tolerated, and the tolerance can be changed
	b := make([]byte, len(good))
	copy(b, good)
	binary.LittleEndian.PutUint64(b[end:], math.Float64bits(1e-10))
	if _, err := Decode(b, 3, 2, 2); err != nil {
		Te.Errorf("padding within tolerance rejected: %v", err)
	}
	if _, err := Decode(b, 3, 2, 2, 1e-12); !isFormatError(err, CorruptPadding) {
		Te.Errorf("expected a corrupt padding FormatError with a tighter tolerance, got %v", err)
	}
}

func TestFiles(Te *testing.T) {
	dir := Te.TempDir()
	P := testPath(Te, 3, 4, 6)
	for _, name := range []string{"h32.rs", "h32.rs.zst", "h32.rs.gz", "h32.dat"} {
		fname := filepath.Join(dir, name)
		if err := WriteFile(fname, testHeader(), P); err != nil {
			Te.Fatal(err)
		}
		P2, err := ReadFile(fname, 3, 4, 6)
		if err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		if !floats.Equal(P.Data(), P2.Data()) {
			Te.Errorf("%s: path changed after writing and reading", name)
		}
		h, err := ReadFileHeader(fname)
		if err != nil {
			Te.Fatal(err)
		}
		if *h != *testHeader() {
			Te.Errorf("%s: header changed after writing and reading", name)
		}
	}
	_, err := ReadFile(filepath.Join(dir, "h32.rs"), 3, 4, 7)
	var fe *pimc.FormatError
	if !errors.As(err, &fe) || fe.FileName() != filepath.Join(dir, "h32.rs") {
		Te.Errorf("expected a FormatError naming the file, got %v", err)
	}
	missing := filepath.Join(dir, "nothere.rs")
	_, err = ReadFile(missing, 3, 4, 6)
	var ferr *pimc.FileError
	if !errors.Is(err, os.ErrNotExist) || !errors.As(err, &ferr) || ferr.FileName() != missing {
		Te.Errorf("expected a not-exist FileError naming the file, got %v", err)
	}
	if _, err := ReadFileHeader(missing); !errors.Is(err, os.ErrNotExist) {
		Te.Errorf("expected a not-exist error for the header, got %v", err)
	}
	err = WriteFile(filepath.Join(dir, "nodir", "h32.rs.zst"), nil, P)
	if !errors.As(err, &ferr) || !errors.Is(err, os.ErrNotExist) {
		Te.Errorf("expected a FileError writing to a missing directory, got %v", err)
	}
}

func TestReadFiles(Te *testing.T) {
	dir := Te.TempDir()
	names := make([]string, 0, 5)
	paths := make([]*pimc.Path, 0, 5)
	for i := 0; i < 5; i++ {
		P, err := pimc.NewPathFunc(2, 3, 4, func(d, p, s int) float64 { return float64(i*1000 + 100*s + 10*p + d) })
		if err != nil {
			Te.Fatal(err)
		}
		name := filepath.Join(dir, "run"+string(rune('a'+i))+".rs.zst")
		if err := WriteFile(name, nil, P); err != nil {
			Te.Fatal(err)
		}
		names = append(names, name)
		paths = append(paths, P)
	}
	read, err := ReadFiles(context.Background(), 2, 3, 4, 2, names...)
	if err != nil {
		Te.Fatal(err)
	}
	for i, P := range read {
		if !floats.Equal(P.Data(), paths[i].Data()) {
			Te.Errorf("file %d out of order or corrupted", i)
		}
	}
	missing := filepath.Join(dir, "missing.rs")
	if _, err := ReadFiles(context.Background(), 2, 3, 4, 0, append(names, missing)...); err == nil {
		Te.Errorf("expected an error for a missing file")
	}
	//with one worker the files are read in order, so the first error is
	//the one returned, and the files after it are not read.
	_, err = ReadFiles(context.Background(), 2, 3, 4, 1, append([]string{missing}, names...)...)
	var ferr *pimc.FileError
	if !errors.As(err, &ferr) || ferr.FileName() != missing || !errors.Is(err, os.ErrNotExist) {
		Te.Errorf("expected the error for %s, got %v", missing, err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	read, err = ReadFiles(ctx, 2, 3, 4, 2, names...)
	if !errors.Is(err, context.Canceled) || read != nil {
		Te.Errorf("expected a cancelled read, got %v %v", read, err)
	}
}
