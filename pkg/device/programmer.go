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
	log "github.com/sirupsen/logrus"

	"github.com/glodstone/vsutool/pkg/vsu"
)

// Progress reports the sector a bulk operation is currently working on,
// along with the number of sectors the operation spans.
type Progress func(sector, total int)

/*
	Programmer drives the conduit across sector ranges for the bulk
	operations: whole image dump & restore, and programming a ROM slot.
	Any sector failure aborts the operation as is; the device has no
	transactional writes, sectors already written stay written.
*/
type Programmer struct {
	//
	conduit  *Conduit
	progress Progress
}

//
func NewProgrammer(c *Conduit) *Programmer {
	return &Programmer{conduit: c}
}

//
func (p *Programmer) SetProgress(f Progress) {
	p.progress = f
}

// DumpImage reads the complete device memory, in ascending sector
// order. On any read failure, the partial result is discarded.
func (p *Programmer) DumpImage() ([]byte, error) {

	start, count := vsu.WholeImageRange()
	ret := make([]byte, 0, vsu.ImageSize)

	for sector := start; sector < start+count; sector++ {
		p.report(sector, count)
		data, err := p.conduit.ReadSector(sector)
		if err != nil {
			return nil, err
		}
		ret = append(ret, data...)
	}

	return ret, nil
}

/*
	RestoreImage writes a complete memory image to the device, in
	ascending sector order. The first sector of the image is consumed
	but never written, since the conduit drops writes to the factory
	sector.
*/
func (p *Programmer) RestoreImage(image []byte) error {

	if len(image) != vsu.ImageSize {
		return &InvalidImageSizeError{Got: len(image)}
	}

	start, count := vsu.WholeImageRange()

	for sector := start; sector < start+count; sector++ {
		p.report(sector, count)
		off := sector * vsu.SectorSize
		if err := p.conduit.WriteSector(
			sector, image[off:off+vsu.SectorSize]); err != nil {
			return err
		}
	}

	return nil
}

/*
	WriteROM programs ROM data into the given slot. The data is size
	checked and padded before any sector is touched, then written to the
	slot's 16 sectors in ascending order.
*/
func (p *Programmer) WriteROM(kind vsu.SlotKind, index int, rom []byte) error {

	start, count, err := vsu.SlotRange(kind, index)
	if err != nil {
		return err
	}

	rom, err = vsu.NormalizeROM(rom)
	if err != nil {
		return err
	}

	log.Debugf("programming %s slot %d, sectors %d-%d",
		kind, index, start, start+count-1)

	for ix := 0; ix < count; ix++ {
		p.report(start+ix, count)
		off := ix * vsu.SectorSize
		if err := p.conduit.WriteSector(
			start+ix, rom[off:off+vsu.SectorSize]); err != nil {
			return err
		}
	}

	return nil
}

//
func (p *Programmer) report(sector, total int) {
	if p.progress != nil {
		p.progress(sector, total)
	}
}
