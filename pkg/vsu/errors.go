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

package vsu

import (
	"fmt"
)

// InvalidSlotError indicates a slot number outside the valid range.
type InvalidSlotError struct {
	Kind  SlotKind
	Index int
}

//
func (e *InvalidSlotError) Error() string {
	return fmt.Sprintf("invalid %s slot number: %d; valid numbers are 0 through %d",
		e.Kind, e.Index, SlotCount-1)
}

// InvalidROMSizeError indicates ROM data of unusable size.
type InvalidROMSizeError struct {
	Got int
}

//
func (e *InvalidROMSizeError) Error() string {
	return fmt.Sprintf(
		"ROM must be a total of %d or %d bytes, got %d bytes",
		ROMHalfSize, SlotSize, e.Got)
}
