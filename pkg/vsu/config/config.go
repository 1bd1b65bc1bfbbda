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
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/glodstone/vsutool/pkg/vsu"
)

//
const (
	Channels = 8

	// volume levels above 11h overflow in the interrupt routine, the
	// firmware falls back to the factory setting in that case
	MaxVolume = 0x11

	// user values of FFh have never been set
	NotSet = 0xff
)

/*
	Settings holds the user configuration stored in sector 1: a volume
	level and a sample rate divisor for each of the eight sound channels.
	Only the first 16 bytes of the sector are meaningful, the volume
	levels at offset 0, the divisors at offset 8. The remainder of the
	sector is padding.
*/
type Settings struct {
	Volume     [Channels]byte
	SampleRate [Channels]byte
}

//
func Decode(sector []byte) (*Settings, error) {

	if len(sector) != vsu.SectorSize {
		return nil, fmt.Errorf(
			"configuration sector must be %d bytes, got %d",
			vsu.SectorSize, len(sector))
	}

	ret := &Settings{}
	copy(ret.Volume[:], sector[:Channels])
	copy(ret.SampleRate[:], sector[Channels:2*Channels])

	return ret, nil
}

// Encode renders the settings into a full sector, padded with 0xff.
func (s *Settings) Encode() []byte {

	sector := make([]byte, vsu.SectorSize)
	for ix := range sector {
		sector[ix] = 0xff
	}

	copy(sector[:Channels], s.Volume[:])
	copy(sector[Channels:2*Channels], s.SampleRate[:])

	return sector
}

/*
	The interchange file format for editing settings, as introduced by
	the original pyVSU-2 utility: two JSON objects keyed by channel
	number, e.g.

		{"volume": {"0": 9, ...}, "sample_rate": {"0": 12, ...}}

	All eight channels of each kind must be present.
*/
type settingsFile struct {
	Volume     map[string]byte `json:"volume"`
	SampleRate map[string]byte `json:"sample_rate"`
}

//
func (s *Settings) MarshalJSON() ([]byte, error) {

	f := settingsFile{
		Volume:     make(map[string]byte),
		SampleRate: make(map[string]byte),
	}

	for ix := 0; ix < Channels; ix++ {
		ch := strconv.Itoa(ix)
		f.Volume[ch] = s.Volume[ix]
		f.SampleRate[ch] = s.SampleRate[ix]
	}

	return json.Marshal(f)
}

//
func (s *Settings) UnmarshalJSON(data []byte) error {

	var f settingsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	for ix := 0; ix < Channels; ix++ {
		ch := strconv.Itoa(ix)
		vol, ok := f.Volume[ch]
		if !ok {
			return &IncompleteSettingsError{Section: "volume", Channel: ix}
		}
		spd, ok := f.SampleRate[ch]
		if !ok {
			return &IncompleteSettingsError{Section: "sample_rate", Channel: ix}
		}
		s.Volume[ix] = vol
		s.SampleRate[ix] = spd
	}

	return nil
}

// VolumeSet tells whether a stored volume byte is a usable user value.
func VolumeSet(v byte) bool {
	return v <= MaxVolume
}

// SampleRateSet tells whether a stored divisor byte is a usable user value.
func SampleRateSet(d byte) bool {
	return d != NotSet
}

/*
	SampleRateHz derives the playback sample rate in Hz from a stored
	divisor byte:

		rate = ((Fosc/4)/8) / (d+3)

	with Fosc = 64 MHz, 4 clock ticks per instruction cycle and a timer
	prescaler of 8. The +2.5 below is approximate, there is extra
	overhead in the interrupt routine.
*/
func SampleRateHz(d byte) float64 {
	return 2000000.0 / (float64(d) + 2.5)
}
