/*
   VSUTool - VSU-2 ROM programming and configuration utility
   Copyright (c) 2026, GLODSTONE LLC

   This file is part of VSUTool.

   VSUTool is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   VSUTool is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with VSUTool. If not, see <http://www.gnu.org/licenses/>.
*/

package device

import (
	"fmt"

	"github.com/glodstone/vsutool/pkg/vsu"
)

// ReadError indicates a failed sector read exchange.
type ReadError struct {
	Sector int
	Cause  error
}

//
func (e *ReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("error reading from sector %d: %v", e.Sector, e.Cause)
	}
	return fmt.Sprintf("error reading from sector %d", e.Sector)
}

//
func (e *ReadError) Unwrap() error {
	return e.Cause
}

// WriteError indicates a failed sector write exchange or verification.
type WriteError struct {
	Sector int
	Cause  error
}

//
func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("error writing to sector %d: %v", e.Sector, e.Cause)
	}
	return fmt.Sprintf("error writing to sector %d", e.Sector)
}

//
func (e *WriteError) Unwrap() error {
	return e.Cause
}

// InvalidLengthError indicates sector data of the wrong size.
type InvalidLengthError struct {
	Got int
}

//
func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf(
		"data written to a sector must be %d bytes, size provided: %d bytes",
		vsu.SectorSize, e.Got)
}

// InvalidImageSizeError indicates a memory image of the wrong size.
type InvalidImageSizeError struct {
	Got int
}

//
func (e *InvalidImageSizeError) Error() string {
	return fmt.Sprintf("image must be %d bytes (64Kb), size provided: %d bytes",
		vsu.ImageSize, e.Got)
}
