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

	"github.com/glodstone/vsutool/pkg/device"
)

//
func NewRestore() *Restore {

	r := &Restore{}
	r.Runner = *NewRunner(
		"restore -d|--device {device} -i|--input {file} [-f|--force]",
		"write an image file to device memory",
		"\nUse the restore command to write a complete 64Kb memory image to the VSU-2.",
		"", `- The factory sector of the image is skipped; factory data on the device can
  only be changed via ICSP, not over the serial link.

`+runnerHelpEpilogue, r.Run)

	r.AddBaseSettings()
	r.AddSetting(&r.File, "input", "i", "", nil, "image input file", true)
	r.AddSetting(&r.Force, "force", "f", "", false,
		"write without asking for confirmation", false)

	return r
}

//
type Restore struct {
	//
	Runner
	//
	File  string
	Force bool
}

//
func (r *Restore) Run() error {

	r.ParseSettings()

	image, err := ioutil.ReadFile(r.File)
	if err != nil {
		return err
	}

	if !r.Force && !GetUserConfirmation(
		"This overwrites all ROM slots and the user configuration, continue?") {
		return nil
	}

	return r.withConduit(func(con *device.Conduit) error {

		prog := device.NewProgrammer(con)
		prog.SetProgress(func(sector, total int) {
			fmt.Printf("\rwriting sector: %d/%d", sector, total-1)
		})

		fmt.Println("writing image...")
		err := prog.RestoreImage(image)
		fmt.Println()
		if err != nil {
			return err
		}

		fmt.Println("operation complete")
		return nil
	})
}
