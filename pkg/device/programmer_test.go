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
	"errors"
	"testing"

	"github.com/glodstone/vsutool/pkg/vsu"
)

//
func TestDumpImage(t *testing.T) {

	f := newFakePort()
	p := NewProgrammer(testConduit(f))

	var sectors []int
	p.SetProgress(func(sector, total int) {
		sectors = append(sectors, sector)
	})

	image, err := p.DumpImage()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(image) != vsu.ImageSize {
		t.Fatalf("want %d bytes, got %d", vsu.ImageSize, len(image))
	}
	if !bytes.Equal(image, f.mem) {
		t.Error("image differs from device memory")
	}

	if len(sectors) != vsu.SectorCount {
		t.Fatalf("want progress for %d sectors, got %d",
			vsu.SectorCount, len(sectors))
	}
	for ix, sector := range sectors {
		if sector != ix {
			t.Fatalf("sectors not dumped in ascending order: %d at %d",
				sector, ix)
		}
	}
}

//
func TestDumpImageAborts(t *testing.T) {

	f := newFakePort()
	f.failReads[100] = true
	p := NewProgrammer(testConduit(f))

	image, err := p.DumpImage()
	if image != nil {
		t.Error("partial image returned")
	}

	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("want ReadError, got %v", err)
	}
	if readErr.Sector != 100 {
		t.Errorf("error does not name offending sector: %v", err)
	}
	if len(f.reads) != 101 {
		t.Errorf("dump did not abort at failing sector: %d reads",
			len(f.reads))
	}
}

//
func TestRestoreImage(t *testing.T) {

	f := newFakePort()
	p := NewProgrammer(testConduit(f))

	factory := make([]byte, vsu.SectorSize)
	copy(factory, f.sector(vsu.FactorySector))

	image := make([]byte, vsu.ImageSize)
	for ix := range image {
		image[ix] = byte(ix * 13)
	}

	if err := p.RestoreImage(image); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// the factory sector is never rewritten
	if !bytes.Equal(f.sector(vsu.FactorySector), factory) {
		t.Error("factory sector was modified")
	}
	if !bytes.Equal(f.mem[vsu.SectorSize:], image[vsu.SectorSize:]) {
		t.Error("device memory differs from image")
	}

	for ix, sector := range f.writes {
		if sector != ix+1 {
			t.Fatalf("sectors not written in ascending order: %d at %d",
				sector, ix)
		}
	}
}

//
func TestRestoreImageInvalidSize(t *testing.T) {

	f := newFakePort()
	p := NewProgrammer(testConduit(f))

	for _, size := range []int{0, vsu.ImageSize - 1, vsu.ImageSize + 1} {
		err := p.RestoreImage(make([]byte, size))
		var sizeErr *InvalidImageSizeError
		if !errors.As(err, &sizeErr) {
			t.Fatalf("size %d: want InvalidImageSizeError, got %v", size, err)
		}
		if sizeErr.Got != size {
			t.Errorf("error does not name offending size: %v", err)
		}
	}

	if f.received != 0 {
		t.Errorf("%d bytes transmitted despite invalid image size", f.received)
	}
}

//
func TestRestoreImageAborts(t *testing.T) {

	f := newFakePort()
	f.failWrites[50] = true
	p := NewProgrammer(testConduit(f))

	image := make([]byte, vsu.ImageSize)
	for ix := range image {
		image[ix] = byte(ix)
	}

	err := p.RestoreImage(image)
	var writeErr *WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("want WriteError, got %v", err)
	}
	if writeErr.Sector != 50 {
		t.Errorf("error does not name offending sector: %v", err)
	}

	// sectors before the failing one stay written, there is no rollback
	if !bytes.Equal(f.sector(49), image[49*vsu.SectorSize:50*vsu.SectorSize]) {
		t.Error("sector written before the failure was rolled back")
	}
	if last := f.writes[len(f.writes)-1]; last != 50 {
		t.Errorf("restore did not abort at failing sector, last write: %d",
			last)
	}
}

//
func TestWriteROMCustomSlot(t *testing.T) {

	f := newFakePort()
	p := NewProgrammer(testConduit(f))

	rom := make([]byte, vsu.ROMHalfSize)
	for ix := range rom {
		rom[ix] = byte(ix * 3)
	}

	if err := p.WriteROM(vsu.Custom, 3, rom); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// custom slot 3 lives at sectors 162-177
	if len(f.writes) != vsu.SlotSectors {
		t.Fatalf("want %d writes, got %d", vsu.SlotSectors, len(f.writes))
	}
	for ix, sector := range f.writes {
		if sector != 162+ix {
			t.Fatalf("unexpected write order: sector %d at %d", sector, ix)
		}
	}

	base := 162 * vsu.SectorSize
	if !bytes.Equal(f.mem[base:base+vsu.ROMHalfSize], rom) {
		t.Error("ROM data differs on device")
	}
	for ix := 0; ix < vsu.ROMHalfSize; ix++ {
		if f.mem[base+vsu.ROMHalfSize+ix] != 0xff {
			t.Fatalf("padding at offset %d is 0x%02x, want 0xff",
				ix, f.mem[base+vsu.ROMHalfSize+ix])
		}
	}
}

//
func TestWriteROMGameSlot(t *testing.T) {

	f := newFakePort()
	p := NewProgrammer(testConduit(f))

	rom := make([]byte, vsu.SlotSize)
	for ix := range rom {
		rom[ix] = byte(ix * 5)
	}

	if err := p.WriteROM(vsu.Game, 0, rom); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for ix, sector := range f.writes {
		if sector != 2+ix {
			t.Fatalf("unexpected write order: sector %d at %d", sector, ix)
		}
	}

	base := 2 * vsu.SectorSize
	if !bytes.Equal(f.mem[base:base+vsu.SlotSize], rom) {
		t.Error("ROM data differs on device")
	}
}

//
func TestWriteROMValidation(t *testing.T) {

	f := newFakePort()
	p := NewProgrammer(testConduit(f))

	var slotErr *vsu.InvalidSlotError
	if err := p.WriteROM(vsu.Game, 7,
		make([]byte, vsu.SlotSize)); !errors.As(err, &slotErr) {
		t.Errorf("want InvalidSlotError, got %v", err)
	}

	var sizeErr *vsu.InvalidROMSizeError
	if err := p.WriteROM(vsu.Game, 0,
		make([]byte, 100)); !errors.As(err, &sizeErr) {
		t.Errorf("want InvalidROMSizeError, got %v", err)
	}

	if f.received != 0 {
		t.Errorf("%d bytes transmitted despite invalid input", f.received)
	}
}
