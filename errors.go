/*
 * errors.go, part of gopimc.
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

// Messages shared by the packages of this library.
const (
	WrongExtents  = "extents must be positive"
	WrongDataLen  = "data length does not match the extents"
	OutOfRange    = "index out of range"
	EmptySelect   = "selection is empty"
	WrongBoxLen   = "box length does not match the number of dimensions"
	NonPositiveL  = "box lengths must be positive"
	WrongPermLen  = "permutation length does not match the number of particles"
	NotABijection = "permutation is not a bijection"
	TooLarge      = "extents too large"
)

//errtrail is embedded by all the error types of the library.
type errtrail struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
}

//Decorate adds the caller to the error trail and returns the trail.
func (E *errtrail) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// FileName returns the file associated to the error, if any.
func (E *errtrail) FileName() string { return E.filename }

// Message returns the error message without the type prefix or the file name.
func (E *errtrail) Message() string { return E.message }

func (E *errtrail) location() string {
	if E.filename == "" {
		return ""
	}
	return " in " + E.filename
}

// FormatError is returned when binary input is truncated, corrupt or inconsistent
// with the extents given by the caller.
type FormatError struct {
	errtrail
}

// NewFormatError returns a FormatError. filename can be empty.
func NewFormatError(message, filename string, deco ...string) *FormatError {
	return &FormatError{errtrail{message, filename, deco}}
}

func (E *FormatError) Error() string {
	return fmt.Sprintf("format error%s: %s", E.location(), E.message)
}

// Critical is always true, a corrupt input is never recoverable.
func (E *FormatError) Critical() bool { return true }

// DimensionMismatch is returned when the caller passes objects with inconsistent shapes.
type DimensionMismatch struct {
	errtrail
}

// NewDimensionMismatch returns a DimensionMismatch.
func NewDimensionMismatch(message string, deco ...string) *DimensionMismatch {
	return &DimensionMismatch{errtrail{message: message, deco: deco}}
}

func (E *DimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: %s", E.message)
}

// Critical is always true.
func (E *DimensionMismatch) Critical() bool { return true }

// InconsistentPermutation is returned when a permutation is not a bijection
// over the particle indexes.
type InconsistentPermutation struct {
	errtrail
}

// NewInconsistentPermutation returns an InconsistentPermutation.
func NewInconsistentPermutation(message string, deco ...string) *InconsistentPermutation {
	return &InconsistentPermutation{errtrail{message: message, deco: deco}}
}

func (E *InconsistentPermutation) Error() string {
	return fmt.Sprintf("inconsistent permutation: %s", E.message)
}

// Critical is always true.
func (E *InconsistentPermutation) Critical() bool { return true }

// FileError is returned when a file can't be opened, read or written.
// It wraps the error from the operating system or the compression library.
type FileError struct {
	errtrail
	err error
}

// NewFileError returns a FileError for the file filename, wrapping err.
func NewFileError(err error, filename string, deco ...string) *FileError {
	return &FileError{errtrail{err.Error(), filename, deco}, err}
}

func (E *FileError) Error() string {
	return fmt.Sprintf("file error%s: %s", E.location(), E.message)
}

// Unwrap returns the wrapped error.
func (E *FileError) Unwrap() error { return E.err }

// Critical is always true.
func (E *FileError) Critical() bool { return true }

//lastSliceError implements LastSliceError
type lastSliceError struct {
	errtrail
}

func newLastSliceError(caller string) *lastSliceError {
	return &lastSliceError{errtrail{message: "EOF", deco: []string{caller}}}
}

//NormalLastSliceTermination does nothing
func (E *lastSliceError) NormalLastSliceTermination() {}

func (E *lastSliceError) Error() string { return "EOF" }

func (E *lastSliceError) Critical() bool { return false }

//ErrDecorate adds caller to the trail of err if err implements Error,
//and returns err unchanged otherwise.
func ErrDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
	}
	return err
}
