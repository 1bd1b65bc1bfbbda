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
	"bytes"
	"fmt"

	"github.com/glodstone/vsutool/pkg/vsu"
)

/*
	fakePort simulates the ROM loader of a VSU-2 behind its serial port.
	It keeps the 64Kb memory, consumes commands byte by byte as they are
	written to the port, and queues up the responses for reading. Reads
	from the port with no response pending fail, like a timed out serial
	read would.
*/
type fakePort struct {
	//
	mem []byte
	//
	in  bytes.Buffer
	out bytes.Buffer
	//
	received int
	reads    []int
	writes   []int
	//
	failReads  map[int]bool
	failWrites map[int]bool
	corrupt    map[int]bool
	//
	mute   bool
	closed bool
}

//
func newFakePort() *fakePort {
	f := &fakePort{
		mem:        make([]byte, vsu.ImageSize),
		failReads:  map[int]bool{},
		failWrites: map[int]bool{},
		corrupt:    map[int]bool{},
	}
	for ix := range f.mem {
		f.mem[ix] = byte(ix * 7)
	}
	return f
}

//
func (f *fakePort) sector(sector int) []byte {
	return f.mem[sector*vsu.SectorSize : (sector+1)*vsu.SectorSize]
}

//
func (f *fakePort) Write(p []byte) (int, error) {
	if f.closed {
		return 0, fmt.Errorf("port closed")
	}
	f.received += len(p)
	f.in.Write(p)
	f.process()
	return len(p), nil
}

//
func (f *fakePort) Read(p []byte) (int, error) {
	if f.closed {
		return 0, fmt.Errorf("port closed")
	}
	return f.out.Read(p)
}

//
func (f *fakePort) Close() error {
	f.closed = true
	return nil
}

//
func (f *fakePort) process() {

	for {
		pending := f.in.Bytes()
		if len(pending) < 2 {
			return
		}

		switch pending[0] {

		case cmdReadSector:
			f.in.Next(2)
			sector := int(pending[1])
			f.reads = append(f.reads, sector)
			if f.mute {
				continue
			}
			f.out.Write(f.sector(sector))
			if f.failReads[sector] {
				f.out.WriteByte('-')
			} else {
				f.out.WriteByte(ack)
			}

		case cmdWriteSector:
			if len(pending) < 2+vsu.SectorSize {
				return // data still incoming
			}
			f.in.Next(2 + vsu.SectorSize)
			sector := int(pending[1])
			f.writes = append(f.writes, sector)
			copy(f.sector(sector), pending[2:2+vsu.SectorSize])
			if f.corrupt[sector] {
				f.sector(sector)[0] ^= 0xff
			}
			if f.failWrites[sector] {
				f.out.WriteByte('-')
			} else {
				f.out.WriteByte(ack)
			}

		default:
			// not a command, skip
			f.in.Next(1)
		}
	}
}

//
func testConduit(f *fakePort) *Conduit {
	c := newConduit(f)
	c.settle = 0
	return c
}
