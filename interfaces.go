/*
 * interfaces.go, part of gopimc.
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

import "gonum.org/v1/gonum/mat"

// Slicer is an interface for anything that can hand out the configuration of
// a PIMC path one time slice at a time, as an nparts x ndim matrix.
type Slicer interface {

	//Is there anything left to read?
	Readable() bool

	//Next puts the next time slice in output, or skips it if output is nil.
	//After the last slice it returns a LastSliceError.
	Next(output *mat.Dense) error

	//Returns the number of particles per slice
	Len() int
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds the given caller to the decoration slice, and returns the slice. An empty string just returns the current value.
}

// PathError is the interface for errors related to a path or to the file it came from.
type PathError interface {
	Error
	Critical() bool
	FileName() string
}

// LastSliceError has a useless function to distinguish the harmless errors (i.e. last slice) so  they can be
// filtered in a typeswitch that looks for this interface.
type LastSliceError interface {
	PathError
	NormalLastSliceTermination() //does nothing
}
