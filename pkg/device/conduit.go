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
	"io"
	"time"

	"github.com/jacobsa/go-serial/serial"
	log "github.com/sirupsen/logrus"

	"github.com/glodstone/vsutool/pkg/vsu"
)

/*
	Conduit is the serial session with the VSU-2 ROM loader. It issues
	one command at a time, strictly request then response, and surfaces
	every protocol failure to the caller. It never retries.
*/
type Conduit struct {
	//
	port   io.ReadWriteCloser
	settle time.Duration
}

//
func Open(device string) (*Conduit, error) {
	log.Debugf("opening port %s", device)
	port, err := openPort(device)
	if err != nil {
		return nil, err
	}
	return newConduit(port), nil
}

//
func newConduit(port io.ReadWriteCloser) *Conduit {
	return &Conduit{
		port:   port,
		settle: writeSettleDelay,
	}
}

//
func openPort(p string) (io.ReadWriteCloser, error) {
	return serial.Open(serial.OpenOptions{
		PortName:              p,
		BaudRate:              baudRate,
		DataBits:              8,
		StopBits:              1,
		InterCharacterTimeout: uint(responseTimeout / time.Millisecond),
	})
}

//
func (c *Conduit) Close() error {
	return c.port.Close()
}

/*
	ReadSector reads one sector. The exchange is the command opcode plus
	the sector number, answered by the sector data followed by the
	acknowledgment byte.
*/
func (c *Conduit) ReadSector(sector int) ([]byte, error) {

	log.Tracef("reading sector %d", sector)

	if err := c.send([]byte{cmdReadSector, byte(sector)}); err != nil {
		return nil, &ReadError{Sector: sector, Cause: err}
	}

	data := make([]byte, vsu.SectorSize)
	if err := c.receive(data); err != nil {
		return nil, &ReadError{Sector: sector, Cause: err}
	}

	if err := c.receiveAck(); err != nil {
		return nil, &ReadError{Sector: sector, Cause: err}
	}

	return data, nil
}

/*
	WriteSector writes one sector and verifies the result by reading it
	back. Sector 0 holds the factory data and cannot be written over the
	serial link, it has to be programmed via ICSP; the device would just
	sit waiting for a non-zero sector number. Writes to sector 0, or to
	any sector outside the address space, are therefore silently
	dropped. Data of the wrong size is rejected before anything goes out
	on the wire, even for dropped writes.
*/
func (c *Conduit) WriteSector(sector int, data []byte) error {

	if len(data) != vsu.SectorSize {
		return &InvalidLengthError{Got: len(data)}
	}

	if sector <= vsu.FactorySector || sector >= vsu.SectorCount {
		log.Debugf("dropping write to sector %d", sector)
		return nil
	}

	log.Tracef("writing sector %d", sector)

	if err := c.send([]byte{cmdWriteSector, byte(sector)}); err != nil {
		return &WriteError{Sector: sector, Cause: err}
	}

	if err := c.send(data); err != nil {
		return &WriteError{Sector: sector, Cause: err}
	}

	// the settle delay has to pass before polling for the
	// acknowledgment, not before sending
	time.Sleep(c.settle)

	if err := c.receiveAck(); err != nil {
		return &WriteError{Sector: sector, Cause: err}
	}

	verify, err := c.ReadSector(sector)
	if err != nil {
		return &WriteError{Sector: sector, Cause: err}
	}

	if !bytes.Equal(verify, data) {
		return &WriteError{Sector: sector,
			Cause: fmt.Errorf("read back data differs")}
	}

	return nil
}

//
func (c *Conduit) receive(data []byte) error {
	_, err := io.ReadFull(c.port, data)
	return err
}

//
func (c *Conduit) send(data []byte) error {
	_, err := c.port.Write(data)
	return err
}

//
func (c *Conduit) receiveAck() error {
	b := make([]byte, 1)
	if err := c.receive(b); err != nil {
		return err
	}
	if b[0] != ack {
		return fmt.Errorf("bad acknowledgment: 0x%02x", b[0])
	}
	return nil
}
