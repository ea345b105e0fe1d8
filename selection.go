/*
 * selection.go, part of gopimc.
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

import "fmt"

//indexMask turns a list of indexes into a mask of length n.
//Repeated indexes just set the same element twice.
func indexMask(idx []int, n int) ([]bool, error) {
	mask := make([]bool, n)
	for _, v := range idx {
		if v < 0 || v >= n {
			return nil, NewDimensionMismatch(fmt.Sprintf("%s: %d not in [0, %d)", OutOfRange, v, n))
		}
		mask[v] = true
	}
	return mask, nil
}

func maskIndexes(mask []bool) []int {
	ret := make([]int, 0, len(mask))
	for i, v := range mask {
		if v {
			ret = append(ret, i)
		}
	}
	return ret
}

func selected(mask []bool, n int) ([]int, error) {
	if len(mask) != n {
		return nil, NewDimensionMismatch(fmt.Sprintf("mask of length %d for an axis of length %d", len(mask), n))
	}
	keep := maskIndexes(mask)
	if len(keep) == 0 {
		return nil, NewDimensionMismatch(EmptySelect)
	}
	return keep, nil
}

// SelectParticles returns a new path with only the particles in idx.
// The selected particles keep their relative order in P, regardless of the
// order in idx, and repeated indexes are selected only once.
func (P *Path) SelectParticles(idx []int) (*Path, error) {
	mask, err := indexMask(idx, P.nparts)
	if err != nil {
		return nil, ErrDecorate(err, "SelectParticles")
	}
	ret, err := P.SelectParticlesMask(mask)
	return ret, ErrDecorate(err, "SelectParticles")
}

// SelectSlices is like SelectParticles, but selects time slices.
func (P *Path) SelectSlices(idx []int) (*Path, error) {
	mask, err := indexMask(idx, P.nslices)
	if err != nil {
		return nil, ErrDecorate(err, "SelectSlices")
	}
	ret, err := P.SelectSlicesMask(mask)
	return ret, ErrDecorate(err, "SelectSlices")
}

// SelectParticlesMask returns a new path with the particles for which
// mask is true. len(mask) must be the number of particles.
func (P *Path) SelectParticlesMask(mask []bool) (*Path, error) {
	keep, err := selected(mask, P.nparts)
	if err != nil {
		return nil, ErrDecorate(err, "SelectParticlesMask")
	}
	return NewPathFunc(P.ndim, len(keep), P.nslices, func(d, p, s int) float64 {
		return P.data[P.index(d, keep[p], s)]
	})
}

// SelectSlicesMask returns a new path with the slices for which
// mask is true. len(mask) must be the number of slices.
func (P *Path) SelectSlicesMask(mask []bool) (*Path, error) {
	keep, err := selected(mask, P.nslices)
	if err != nil {
		return nil, ErrDecorate(err, "SelectSlicesMask")
	}
	return NewPathFunc(P.ndim, P.nparts, len(keep), func(d, p, s int) float64 {
		return P.data[P.index(d, p, keep[s])]
	})
}
