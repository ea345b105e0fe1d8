/*
 * doc.go, part of gopimc.
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

/*Package pimc provides the data structures and the basic manipulations needed
to analyze imaginary-time path-integral Monte Carlo (PIMC) configurations.

A PIMC configuration is a set of world-lines: each particle is represented by
its positions at a number of discrete imaginary-time slices. goPIMC stores a
whole configuration in a Path, a dense (dimension, particle, slice) tensor.


	**goPIMC Capabilities**

    Reads and writes the binary restart files produced by PIMC engines,
	plain or compressed (package restart).

    Removes periodic-boundary jumps from world-lines using the minimum
	image convention, and wraps them back into the box.

    Selects particles and time slices with index lists or boolean masks.

    Decomposes a particle permutation into exchange cycles and builds
	cycle-length distributions (packages perm and histo).

    Computes world-line centroids and winding numbers.

Nothing in this library runs a simulation. All the functions work on data
produced elsewhere, fully loaded in memory, and none of them modifies its
input.
*/
package pimc
