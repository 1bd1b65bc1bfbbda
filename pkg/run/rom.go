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

package run

import (
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/glodstone/vsutool/pkg/device"
	"github.com/glodstone/vsutool/pkg/vsu"
)

//
const romHelpEpilogue = `- When writing a ROM, separate files for the U9 and U10 chips can be provided.
  Always specify U9 and U10 in that order, e.g.:

      vsuctl custom -d /dev/ttyUSB0 -s 0 SND_U9.716 SND_U10.716

- ROM files must be in raw binary format, not in HEX file format. A single
  2048 byte file programs a board with only U9 populated; the remaining
  space is padded.
`

//
func NewGame() *ROM {
	return newROM(vsu.Game,
		"program a ROM into a game slot - THIS WILL OVERWRITE FACTORY PROGRAMMED ROM DATA")
}

//
func NewCustom() *ROM {
	return newROM(vsu.Custom, "program a ROM into a custom slot")
}

//
func newROM(kind vsu.SlotKind, short string) *ROM {

	r := &ROM{kind: kind}
	r.Runner = *NewRunner(
		fmt.Sprintf("%s -d|--device {device} -s|--slot {slot} {file} [{file}]",
			kind),
		short,
		fmt.Sprintf(
			"\nUse the %s command to program a ROM into one of the seven %s slots.",
			kind, kind),
		"", romHelpEpilogue+"\n"+runnerHelpEpilogue, r.Run)

	r.AddBaseSettings()
	r.AddSetting(&r.Slot, "slot", "s", "", -1,
		fmt.Sprintf("%s ROM slot number (0-%d)", kind, vsu.SlotCount-1), false)

	return r
}

//
type ROM struct {
	//
	Runner
	//
	kind vsu.SlotKind
	Slot int
}

//
func (r *ROM) Run() error {

	r.ParseSettings()

	if r.Slot == -1 {
		return fmt.Errorf("you need to specify the --slot command line flag")
	}

	if len(r.Args) == 0 || len(r.Args) > 2 {
		return fmt.Errorf(
			"specify one or two ROM files (U9 first, then U10)")
	}

	var rom []byte
	for _, f := range r.Args {
		data, err := ioutil.ReadFile(f)
		if err != nil {
			return err
		}
		rom = append(rom, data...)
	}

	// fail on bad slot or ROM size before the port is even opened
	if _, _, err := vsu.SlotRange(r.kind, r.Slot); err != nil {
		return err
	}
	if _, err := vsu.NormalizeROM(rom); err != nil {
		return err
	}

	return r.withConduit(func(con *device.Conduit) error {

		prog := device.NewProgrammer(con)

		fmt.Println("writing rom...")
		if err := prog.WriteROM(r.kind, r.Slot, rom); err != nil {
			return err
		}

		pos, err := vsu.SwitchPosition(r.kind, r.Slot)
		if err != nil {
			return err
		}

		fmt.Println("ROM programmed, use the switch settings below:")
		displaySwitches(pos)
		fmt.Println("\noperation complete")
		return nil
	})
}

/*
	displaySwitches prints the positions of the four DIP switches on the
	board for selecting the given slot, most significant switch first.
*/
func displaySwitches(pos int) {

	bits := fmt.Sprintf("%04b", pos)

	img := [5][2]string{
		{"\t┌──┐", "\t┌──┐"},
		{"\t│  │", "\t│[]│"},
		{"\t│[]│", "\t│  │"},
		{"\t└──┘", "\t└──┘"},
		{"\t x  ", "\t x  "},
	}

	for _, line := range img {
		row := ""
		for ix, b := range bits {
			cell := line[0]
			if b == '1' {
				cell = line[1]
			}
			row += strings.Replace(cell, "x", strconv.Itoa(4-ix), 1)
		}
		fmt.Println(row)
	}
}
