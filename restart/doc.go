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

/*Package restart reads and writes the path stored in the binary restart
(checkpoint) files of PIMC engines.

******************** Format ***************************************************

All numbers are little-endian IEEE-754 doubles.

	bytes [0, 4)        leading marker, not interpreted
	bytes [4, 13)       discretization field region, not interpreted
	bytes [13, 39)      timing/metadata field region, not interpreted
	8 bytes             zero padding
	8*ndim*nparts*nslices bytes
	                    the path, dimension index fastest, then particle, then slice
	8 bytes             zero padding

The file is not self-describing: ndim, nparts and nslices must be supplied
by the caller. The two paddings are the only integrity check available, so
they are always verified.

*******************************************************************************/
package restart
