/*
 * perm.go, part of gopimc.
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

//Package perm decomposes the permutation that links the world-lines of a PIMC
//configuration into exchange cycles.
//
//A permutation is given as a slice where permutation[i] is the particle whose
//world-line continues the one of particle i across the imaginary-time boundary.
package perm

import (
	"fmt"

	pimc "github.com/gopimc/pimc"
	"github.com/gopimc/pimc/histo"
)

// Cycle is a closed exchange loop: permutation[c[j]] == c[(j+1)%len(c)].
type Cycle []int

func checkLen(permutation []int, nparts int) error {
	if nparts <= 0 || len(permutation) != nparts {
		return pimc.NewDimensionMismatch(fmt.Sprintf("%s: %d, %d", pimc.WrongPermLen, len(permutation), nparts))
	}
	return nil
}

//walk follows the permutation from start, marking the particles it visits.
//It returns false if the walk leaves the valid range or reaches a marked
//particle before coming back to start, which can only happen if
//permutation is not a bijection.
func walk(permutation []int, start int, visited []bool) (Cycle, bool) {
	c := Cycle{start}
	visited[start] = true
	for next := permutation[start]; next != start; next = permutation[next] {
		if next < 0 || next >= len(permutation) || visited[next] {
			return c, false
		}
		visited[next] = true
		c = append(c, next)
	}
	return c, true
}

// Decompose returns the exchange cycles of permutation, which must have
// nparts elements. Cycles are sorted by their smallest particle, and each
// cycle starts at its smallest particle. Walks that don't close are
// dropped. If check is true, an InconsistentPermutation is returned unless
// the cycles contain every particle exactly once. Without the check, a
// malformed permutation just gives cycles that don't cover all particles.
func Decompose(permutation []int, nparts int, check bool) ([]Cycle, error) {
	if err := checkLen(permutation, nparts); err != nil {
		return nil, pimc.ErrDecorate(err, "Decompose")
	}
	visited := make([]bool, nparts)
	cycles := make([]Cycle, 0)
	covered := 0
	for i := range visited {
		if visited[i] {
			continue
		}
		c, closed := walk(permutation, i, visited)
		if !closed {
			continue
		}
		cycles = append(cycles, c)
		covered += len(c)
	}
	if check && covered != nparts {
		return nil, pimc.NewInconsistentPermutation(fmt.Sprintf("cycles cover %d of %d particles", covered, nparts), "Decompose")
	}
	return cycles, nil
}

// Validate returns an InconsistentPermutation if permutation is not a
// bijection over [0, len(permutation)).
func Validate(permutation []int) error {
	seen := make([]bool, len(permutation))
	for i, v := range permutation {
		if v < 0 || v >= len(permutation) {
			return pimc.NewInconsistentPermutation(fmt.Sprintf("%s: permutation[%d]=%d", pimc.OutOfRange, i, v), "Validate")
		}
		if seen[v] {
			return pimc.NewInconsistentPermutation(fmt.Sprintf("%s: %d appears more than once", pimc.NotABijection, v), "Validate")
		}
		seen[v] = true
	}
	return nil
}

// Identity returns the identity permutation of n particles.
func Identity(n int) []int {
	ret := make([]int, n)
	for i := range ret {
		ret[i] = i
	}
	return ret
}

// Follow returns the cycle that contains particle p, starting at p.
func Follow(permutation []int, p int) (Cycle, error) {
	if p < 0 || p >= len(permutation) {
		return nil, pimc.NewDimensionMismatch(fmt.Sprintf("%s: %d", pimc.OutOfRange, p), "Follow")
	}
	c, closed := walk(permutation, p, make([]bool, len(permutation)))
	if !closed {
		return nil, pimc.NewInconsistentPermutation(fmt.Sprintf("the walk from %d doesn't close", p), "Follow")
	}
	return c, nil
}

// Lengths returns the length of each cycle.
func Lengths(cycles []Cycle) []int {
	ret := make([]int, len(cycles))
	for i, c := range cycles {
		ret[i] = len(c)
	}
	return ret
}

// LengthHistogram returns a histogram with the number of cycles of each
// length from 1 to nparts. Bin i counts the cycles of length i+1.
// If nparts is not positive, the longest cycle (or 1, if there are no
// cycles) sets the range.
func LengthHistogram(cycles []Cycle, nparts int) *histo.Data {
	if nparts < 1 {
		nparts = 1
		for _, c := range cycles {
			nparts = max(nparts, len(c))
		}
	}
	dividers := make([]float64, nparts+1)
	for i := range dividers {
		dividers[i] = float64(i) + 0.5
	}
	lengths := make([]float64, len(cycles))
	for i, c := range cycles {
		lengths[i] = float64(len(c))
	}
	return histo.NewData(dividers, lengths)
}
