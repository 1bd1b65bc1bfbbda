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
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/glodstone/vsutool/pkg/device"
	"github.com/glodstone/vsutool/pkg/vsu"
	"github.com/glodstone/vsutool/pkg/vsu/config"
)

//
func NewUpdate() *Update {

	u := &Update{}
	u.Runner = *NewRunner(
		"update -d|--device {device} -i|--input {file}",
		"update volume and sample rate configuration",
		`
Use the update command to write volume and sample rate settings from a JSON
file to the VSU-2. The file has to cover all eight channels; use the info
command to produce one for editing.`,
		"", runnerHelpEpilogue, u.Run)

	u.AddBaseSettings()
	u.AddSetting(&u.File, "input", "i", "", nil,
		"JSON settings input file", true)

	return u
}

//
type Update struct {
	//
	Runner
	//
	File string
}

//
func (u *Update) Run() error {

	u.ParseSettings()

	data, err := ioutil.ReadFile(u.File)
	if err != nil {
		return err
	}

	settings := &config.Settings{}
	if err := json.Unmarshal(data, settings); err != nil {
		return err
	}

	return u.withConduit(func(con *device.Conduit) error {

		fmt.Println("writing user configuration...")
		if err := con.WriteSector(
			vsu.ConfigSector, settings.Encode()); err != nil {
			return err
		}

		if _, err := displayConfiguration(con); err != nil {
			return err
		}

		fmt.Println("operation complete")
		return nil
	})
}
