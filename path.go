/*
 * path.go, part of gopimc.
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

package pimc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Path is a PIMC configuration: the positions of nparts particles in ndim
// spatial dimensions at nslices imaginary-time slices.
// The data are stored in a single slice, with the dimension index varying
// fastest, then the particle, then the slice. This is the order used by
// the restart files. A Path is never modified after it is created: all the
// functions in this library that transform a path return a new one.
type Path struct {
	ndim, nparts, nslices int
	data                  []float64
}

func checkExtents(ndim, nparts, nslices int) error {
	if ndim <= 0 || nparts <= 0 || nslices <= 0 {
		return NewDimensionMismatch(fmt.Sprintf("%s: %d %d %d", WrongExtents, ndim, nparts, nslices))
	}
	//the data must fit in memory that can be addressed with an int.
	if n := ndim * nparts * nslices; n/nslices/nparts != ndim || n > math.MaxInt/8 {
		return NewDimensionMismatch(fmt.Sprintf("%s: %d %d %d", TooLarge, ndim, nparts, nslices))
	}
	return nil
}

func newPath(ndim, nparts, nslices int) *Path {
	return &Path{ndim: ndim, nparts: nparts, nslices: nslices, data: make([]float64, ndim*nparts*nslices)}
}

// NewPath returns a path with the given extents and a copy of data, which
// must be in the storage order of Path. If data is nil, a zero path is returned.
func NewPath(ndim, nparts, nslices int, data []float64) (*Path, error) {
	if err := checkExtents(ndim, nparts, nslices); err != nil {
		return nil, ErrDecorate(err, "NewPath")
	}
	P := newPath(ndim, nparts, nslices)
	if data == nil {
		return P, nil
	}
	if len(data) != len(P.data) {
		return nil, NewDimensionMismatch(fmt.Sprintf("%s: %d, expected %d", WrongDataLen, len(data), len(P.data)), "NewPath")
	}
	copy(P.data, data)
	return P, nil
}

// NewPathFunc returns a path with the given extents where the element
// (d, p, s) is f(d, p, s).
func NewPathFunc(ndim, nparts, nslices int, f func(d, p, s int) float64) (*Path, error) {
	if err := checkExtents(ndim, nparts, nslices); err != nil {
		return nil, ErrDecorate(err, "NewPathFunc")
	}
	P := newPath(ndim, nparts, nslices)
	i := 0
	for s := 0; s < nslices; s++ {
		for p := 0; p < nparts; p++ {
			for d := 0; d < ndim; d++ {
				P.data[i] = f(d, p, s)
				i++
			}
		}
	}
	return P, nil
}

// Dims returns the number of dimensions, particles and time slices.
func (P *Path) Dims() (ndim, nparts, nslices int) {
	return P.ndim, P.nparts, P.nslices
}

// Len returns the number of particles.
func (P *Path) Len() int {
	return P.nparts
}

func (P *Path) index(d, p, s int) int {
	return d + P.ndim*(p+P.nparts*s)
}

// At returns the d coordinate of particle p at slice s. It panics if any of
// the indexes is out of range.
func (P *Path) At(d, p, s int) float64 {
	if d < 0 || d >= P.ndim || p < 0 || p >= P.nparts || s < 0 || s >= P.nslices {
		panic(fmt.Sprintf("gopimc: At(%d, %d, %d) %s", d, p, s, OutOfRange))
	}
	return P.data[P.index(d, p, s)]
}

//vec returns a view of the position of particle p at slice s.
func (P *Path) vec(p, s int) []float64 {
	i := P.index(0, p, s)
	return P.data[i : i+P.ndim : i+P.ndim]
}

func (P *Path) clone() *Path {
	ret := newPath(P.ndim, P.nparts, P.nslices)
	copy(ret.data, P.data)
	return ret
}

// Data returns a copy of the path data, in storage order.
func (P *Path) Data() []float64 {
	ret := make([]float64, len(P.data))
	copy(ret, P.data)
	return ret
}

// SliceCoords returns the coordinates of all particles at slice s
// as an nparts x ndim matrix. If a matrix of the right size is given,
// it is filled and returned instead of allocating a new one.
func (P *Path) SliceCoords(s int, dst ...*mat.Dense) *mat.Dense {
	if s < 0 || s >= P.nslices {
		panic(fmt.Sprintf("gopimc: SliceCoords(%d) %s", s, OutOfRange))
	}
	ret := getDense(P.nparts, P.ndim, dst...)
	for p := 0; p < P.nparts; p++ {
		ret.SetRow(p, P.vec(p, s))
	}
	return ret
}

// ParticleCoords returns the world-line of particle p as an nslices x ndim
// matrix. dst is used as in SliceCoords.
func (P *Path) ParticleCoords(p int, dst ...*mat.Dense) *mat.Dense {
	if p < 0 || p >= P.nparts {
		panic(fmt.Sprintf("gopimc: ParticleCoords(%d) %s", p, OutOfRange))
	}
	ret := getDense(P.nslices, P.ndim, dst...)
	for s := 0; s < P.nslices; s++ {
		ret.SetRow(s, P.vec(p, s))
	}
	return ret
}

func getDense(r, c int, dst ...*mat.Dense) *mat.Dense {
	if len(dst) == 0 || dst[0] == nil {
		return mat.NewDense(r, c, nil)
	}
	if dr, dc := dst[0].Dims(); dr != r || dc != c {
		panic(mat.ErrShape)
	}
	return dst[0]
}

// Slices returns a Slicer that reads P one time slice at a time.
func (P *Path) Slices() *SliceReader {
	return &SliceReader{path: P}
}

// SliceReader reads the time slices of a path in order. It implements Slicer.
type SliceReader struct {
	path *Path
	next int
}

var _ Slicer = (*SliceReader)(nil)

// Readable returns true if there are slices left to read.
func (S *SliceReader) Readable() bool {
	return S.next < S.path.nslices
}

// Len returns the number of particles per slice.
func (S *SliceReader) Len() int {
	return S.path.nparts
}

// Next puts the next slice in output, which must be nparts x ndim. If output
// is nil the slice is skipped.
func (S *SliceReader) Next(output *mat.Dense) error {
	if !S.Readable() {
		return newLastSliceError("Next")
	}
	if output != nil {
		S.path.SliceCoords(S.next, output)
	}
	S.next++
	return nil
}
