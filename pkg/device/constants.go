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
	"time"
)

/*
	The ROM loader on the VSU-2 speaks a minimal command set over its
	serial header: a command opcode followed by a sector number, with a
	single '+' byte acknowledging success. There is no framing beyond
	the fixed message lengths, and never more than one command in
	flight.
*/
const (
	cmdReadSector  = 'r'
	cmdWriteSector = 'w'

	ack = '+'

	baudRate = 115200

	// bounded wait for any response byte
	responseTimeout = time.Second

	// the controller CPU stalls for a few milliseconds while a sector
	// write completes, only then does it acknowledge
	writeSettleDelay = 10 * time.Millisecond
)
