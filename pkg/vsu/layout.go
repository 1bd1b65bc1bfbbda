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

/*
	The upper 64Kb of the VSU-2 controller's program memory is organized
	into 256 sectors of 256 bytes each. Sector 0 holds factory data and
	cannot be modified over the serial link, sector 1 holds the user
	configuration, and all remaining sectors hold ROM data. Each ROM slot
	spans 16 contiguous sectors (4Kb), regardless of how much space the
	ROM actually needs. The seven game slots come first, the seven custom
	slots directly after them, so that programming a custom slot can
	never touch a factory shipped game.
*/
const (
	SectorSize  = 256
	SectorCount = 256
	ImageSize   = SectorSize * SectorCount

	FactorySector = 0
	ConfigSector  = 1

	SlotCount   = 7
	SlotSectors = 16
	SlotSize    = SlotSectors * SectorSize

	// ROMs with only one of the two chips populated are half size
	ROMHalfSize = SlotSize / 2

	romStartSector   = 2
	gameBlockSectors = SlotCount * SlotSectors
)

//
type SlotKind int

const (
	Game SlotKind = iota
	Custom
)

//
func (k SlotKind) String() string {

	switch k {

	case Game:
		return "game"

	case Custom:
		return "custom"

	default:
		return "<unknown>"
	}
}

/*
	SlotRange maps a ROM slot to its sector range, returning the first
	sector of the slot and the number of sectors it spans. Slot numbers
	run from 0 through 6 for either kind.
*/
func SlotRange(kind SlotKind, index int) (int, int, error) {

	if index < 0 || index >= SlotCount {
		return 0, 0, &InvalidSlotError{Kind: kind, Index: index}
	}

	start := romStartSector + index*SlotSectors
	if kind == Custom {
		start += gameBlockSectors
	}

	return start, SlotSectors, nil
}

// WholeImageRange returns the sector range covering the entire memory.
func WholeImageRange() (int, int) {
	return 0, SectorCount
}

/*
	NormalizeROM validates the size of ROM data for one slot and brings
	it to full slot size. A 2048 byte ROM has only the U9 chip populated
	(e.g. Flight 2000); the missing half is padded with 0xff. Any size
	other than 2048 or 4096 bytes is rejected.
*/
func NormalizeROM(data []byte) ([]byte, error) {

	switch len(data) {

	case SlotSize:
		return data, nil

	case ROMHalfSize:
		ret := make([]byte, SlotSize)
		copy(ret, data)
		for ix := ROMHalfSize; ix < SlotSize; ix++ {
			ret[ix] = 0xff
		}
		return ret, nil

	default:
		return nil, &InvalidROMSizeError{Got: len(data)}
	}
}

/*
	SwitchPosition returns the position 0-13 that the four DIP switches
	on the board need to be set to for selecting the given slot.
*/
func SwitchPosition(kind SlotKind, index int) (int, error) {
	start, _, err := SlotRange(kind, index)
	if err != nil {
		return 0, err
	}
	return (start - romStartSector) / SlotSectors, nil
}
