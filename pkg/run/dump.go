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
	"os"

	"github.com/glodstone/vsutool/pkg/device"
)

//
func NewDump() *Dump {

	d := &Dump{}
	d.Runner = *NewRunner(
		"dump -d|--device {device} -o|--output {file} [-f|--force]",
		"dump device memory into an image file",
		"\nUse the dump command to save the complete 64Kb memory of the VSU-2 to an image file.",
		"", runnerHelpEpilogue, d.Run)

	d.AddBaseSettings()
	d.AddSetting(&d.File, "output", "o", "", nil, "image output file", true)
	d.AddSetting(&d.Force, "force", "f", "", false,
		"force overwriting output file", false)

	return d
}

//
type Dump struct {
	//
	Runner
	//
	File  string
	Force bool
}

//
func (d *Dump) Run() error {

	d.ParseSettings()

	if !d.Force {
		if _, err := os.Stat(d.File); err == nil &&
			!GetUserConfirmation("File exists, overwrite?") {
			return nil
		}
	}

	return d.withConduit(func(con *device.Conduit) error {

		prog := device.NewProgrammer(con)
		prog.SetProgress(func(sector, total int) {
			fmt.Printf("\rreading sector: %d/%d", sector, total-1)
		})

		fmt.Println("dumping memory...")
		image, err := prog.DumpImage()
		fmt.Println()
		if err != nil {
			return err
		}

		fmt.Printf("writing file: %s\n", d.File)
		if err := ioutil.WriteFile(d.File, image, 0644); err != nil {
			return err
		}

		fmt.Println("operation complete")
		return nil
	})
}
