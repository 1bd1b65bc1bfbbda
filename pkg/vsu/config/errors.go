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

package config

import (
	"fmt"
)

/*
	IncompleteSettingsError indicates a settings file that does not
	cover all eight channels. Partial updates are not supported, the
	device always gets a complete sector 1.
*/
type IncompleteSettingsError struct {
	Section string
	Channel int
}

//
func (e *IncompleteSettingsError) Error() string {
	return fmt.Sprintf("incomplete settings: missing %s value for channel %d",
		e.Section, e.Channel)
}
