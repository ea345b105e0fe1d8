/*
 * mic.go, part of gopimc.
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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Unwrap returns a continuous version of path. Each world-line starts at its
// position in slice 0, and every step between consecutive slices is replaced
// by its minimum image in box. The steps are accumulated, so a particle that
// crosses the cell boundary keeps going instead of jumping back into the box.
// Particles are independent of each other. A path with a single slice is
// returned unchanged (as a copy).
func Unwrap(path *Path, box Box) (*Path, error) {
	if err := box.Check(path.ndim); err != nil {
		return nil, ErrDecorate(err, "Unwrap")
	}
	ret := path.clone()
	dr := make([]float64, path.ndim)
	for p := 0; p < path.nparts; p++ {
		for s := 1; s < path.nslices; s++ {
			floats.SubTo(dr, path.vec(p, s), path.vec(p, s-1))
			MinImage(dr, box)
			//the previous unwrapped position, not the raw one.
			floats.AddTo(ret.vec(p, s), ret.vec(p, s-1), dr)
		}
	}
	return ret, nil
}

// Centroids returns an nparts x ndim matrix with the average position of
// each world-line over all time slices. For periodic systems path should be
// unwrapped first.
func Centroids(path *Path) *mat.Dense {
	ret := mat.NewDense(path.nparts, path.ndim, nil)
	line := make([]float64, path.nslices)
	for p := 0; p < path.nparts; p++ {
		for d := 0; d < path.ndim; d++ {
			for s := range line {
				line[s] = path.data[path.index(d, p, s)]
			}
			ret.Set(p, d, stat.Mean(line, nil))
		}
	}
	return ret
}

// WindingNumbers returns, for each dimension, the total displacement of all
// the world-lines in path divided by the box length. Each world-line is closed
// through the permutation, from the last slice of particle p to the first
// slice of particle permutation[p]. For a valid configuration all the winding
// numbers are integers (up to floating point error).
func WindingNumbers(path *Path, box Box, permutation []int) ([]float64, error) {
	if len(permutation) != path.nparts {
		return nil, NewDimensionMismatch(fmt.Sprintf("%s: %d, %d", WrongPermLen, len(permutation), path.nparts), "WindingNumbers")
	}
	for _, v := range permutation {
		if v < 0 || v >= path.nparts {
			return nil, NewInconsistentPermutation(fmt.Sprintf("%s: %d", OutOfRange, v), "WindingNumbers")
		}
	}
	u, err := Unwrap(path, box)
	if err != nil {
		return nil, ErrDecorate(err, "WindingNumbers")
	}
	last := path.nslices - 1
	w := make([]float64, path.ndim)
	dr := make([]float64, path.ndim)
	for p, next := range permutation {
		floats.SubTo(dr, u.vec(p, last), u.vec(p, 0))
		floats.Add(w, dr)
		floats.SubTo(dr, path.vec(next, 0), path.vec(p, last))
		MinImage(dr, box)
		floats.Add(w, dr)
	}
	floats.Div(w, box)
	return w, nil
}
