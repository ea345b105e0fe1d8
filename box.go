/*
 * box.go, part of gopimc.
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
)

// Box holds the edge lengths of a rectangular periodic cell centered at the
// origin, one per spatial dimension. The cell spans [-L/2, L/2) along each axis.
type Box []float64

// Check returns a DimensionMismatch if the box doesn't have ndim
// lengths or if any of them is not positive.
func (B Box) Check(ndim int) error {
	if len(B) != ndim {
		return NewDimensionMismatch(fmt.Sprintf("%s: %d, %d", WrongBoxLen, len(B), ndim))
	}
	for i, v := range B {
		if !(v > 0) || math.IsInf(v, 1) {
			return NewDimensionMismatch(fmt.Sprintf("%s: L[%d]=%g", NonPositiveL, i, v))
		}
	}
	return nil
}

// MinImage replaces, in place, the displacement dr by its minimum image in
// box, subtracting from each component the nearest multiple of the
// corresponding box length. Ties are rounded to even. len(dr) must be len(box).
func MinImage(dr []float64, box Box) {
	for i, L := range box {
		dr[i] -= math.RoundToEven(dr[i]/L) * L
	}
}

// InBox returns x mapped into [-L/2, L/2).
func InBox(x, L float64) float64 {
	return x - L*math.Floor((x+L/2)/L)
}

// Wrap returns a new path with all the positions of path mapped into box.
func Wrap(path *Path, box Box) (*Path, error) {
	if err := box.Check(path.ndim); err != nil {
		return nil, ErrDecorate(err, "Wrap")
	}
	ret := path.clone()
	for i, v := range ret.data {
		ret.data[i] = InBox(v, box[i%path.ndim])
	}
	return ret, nil
}
