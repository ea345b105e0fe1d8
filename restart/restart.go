/*
 * restart.go, part of gopimc.
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
	"encoding/binary"
	"fmt"
	"math"

	pimc "github.com/gopimc/pimc"
)

// Layout of the restart file.
const (
	MarkerLen         = 4
	DiscretizationLen = 9
	TimingLen         = 26
	HeaderLen         = DiscretizationLen + TimingLen
	PaddingLen        = 8
	// PaddingTolerance is the largest absolute value accepted for a padding double.
	PaddingTolerance = 1e-8
)

const payloadStart = MarkerLen + HeaderLen + PaddingLen

//maxElements is the largest number of doubles for which Size doesn't overflow.
const maxElements = (math.MaxInt - payloadStart - PaddingLen) / 8

// FormatError messages.
const (
	Truncated      = "truncated"
	CorruptPadding = "corrupt padding"
	BadExtents     = "extents must be positive"
)

// Header holds the bytes that precede the path. None of them is
// interpreted by this package.
type Header struct {
	Marker         [MarkerLen]byte
	Discretization [DiscretizationLen]byte
	Timing         [TimingLen]byte
}

// Size returns the length in bytes of a restart file with the given extents.
// The result is meaningless if the file would not fit in an int.
func Size(ndim, nparts, nslices int) int {
	return payloadStart + 8*ndim*nparts*nslices + PaddingLen
}

func float64At(b []byte, i int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b[i : i+8]))
}

// DecodeHeader returns the header of the restart file in b.
func DecodeHeader(b []byte) (*Header, error) {
	if len(b) < MarkerLen+HeaderLen {
		return nil, pimc.NewFormatError(Truncated, "", "DecodeHeader")
	}
	h := new(Header)
	copy(h.Marker[:], b)
	copy(h.Discretization[:], b[MarkerLen:])
	copy(h.Timing[:], b[MarkerLen+DiscretizationLen:])
	return h, nil
}

// Decode returns the path stored in the restart file contents b.
// If tol is given, its first element replaces PaddingTolerance.
// Bytes beyond the trailing padding are ignored.
func Decode(b []byte, ndim, nparts, nslices int, tol ...float64) (*pimc.Path, error) {
	P, err := decode(b, "", ndim, nparts, nslices, tol...)
	return P, pimc.ErrDecorate(err, "Decode")
}

func decode(b []byte, filename string, ndim, nparts, nslices int, tol ...float64) (*pimc.Path, error) {
	if ndim <= 0 || nparts <= 0 || nslices <= 0 {
		return nil, pimc.NewFormatError(fmt.Sprintf("%s: %d %d %d", BadExtents, ndim, nparts, nslices), filename)
	}
	n := ndim * nparts * nslices
	//no buffer can hold a file whose size overflows.
	if n/nslices/nparts != ndim || n > maxElements || len(b) < Size(ndim, nparts, nslices) {
		return nil, pimc.NewFormatError(Truncated, filename)
	}
	t := PaddingTolerance
	if len(tol) > 0 {
		t = tol[0]
	}
	end := payloadStart + 8*n
	for _, i := range [2]int{payloadStart - PaddingLen, end} {
		//written so that NaN fails too.
		if !(math.Abs(float64At(b, i)) <= t) {
			return nil, pimc.NewFormatError(fmt.Sprintf("%s at byte %d", CorruptPadding, i), filename)
		}
	}
	return pimc.NewPathFunc(ndim, nparts, nslices, func(d, p, s int) float64 {
		return float64At(b, payloadStart+8*(d+ndim*(p+nparts*s)))
	})
}

// Encode returns the contents of a restart file with the header h and the path P.
// If h is nil, the header bytes are all zero.
func Encode(h *Header, P *pimc.Path) []byte {
	b := make([]byte, Size(P.Dims()))
	if h != nil {
		copy(b, h.Marker[:])
		copy(b[MarkerLen:], h.Discretization[:])
		copy(b[MarkerLen+DiscretizationLen:], h.Timing[:])
	}
	for i, v := range P.Data() {
		binary.LittleEndian.PutUint64(b[payloadStart+8*i:], math.Float64bits(v))
	}
	return b
}
