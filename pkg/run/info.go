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
func NewInfo() *Info {

	i := &Info{}
	i.Runner = *NewRunner(
		"info -d|--device {device} [-o|--output {file}]",
		"display volume and sample rate configuration",
		`
Use the info command to display the volume and sample rate configuration of the
VSU-2, factory values next to the user overrides. Optionally provide a filename
to also output the user configuration in JSON format for editing.`,
		"", runnerHelpEpilogue, i.Run)

	i.AddBaseSettings()
	i.AddSetting(&i.File, "output", "o", "", nil,
		"JSON output file for editing the user configuration", false)

	return i
}

//
type Info struct {
	//
	Runner
	//
	File string
}

//
func (i *Info) Run() error {

	i.ParseSettings()

	return i.withConduit(func(con *device.Conduit) error {

		user, err := displayConfiguration(con)
		if err != nil {
			return err
		}

		if i.File == "" {
			return nil
		}

		data, err := json.MarshalIndent(user, "", "    ")
		if err != nil {
			return err
		}
		if err := ioutil.WriteFile(i.File, data, 0644); err != nil {
			return err
		}

		fmt.Printf("configuration written to: %s\n", i.File)
		return nil
	})
}

/*
	displayConfiguration reads the factory and user configuration sectors
	and prints them side by side. User values that have never been set, or
	that the firmware would reject and replace with the factory setting,
	show up as N/A. It returns the decoded user settings.
*/
func displayConfiguration(con *device.Conduit) (*config.Settings, error) {

	factorySector, err := con.ReadSector(vsu.FactorySector)
	if err != nil {
		return nil, err
	}
	userSector, err := con.ReadSector(vsu.ConfigSector)
	if err != nil {
		return nil, err
	}

	factory, err := config.Decode(factorySector)
	if err != nil {
		return nil, err
	}
	user, err := config.Decode(userSector)
	if err != nil {
		return nil, err
	}

	fmt.Println("VSU-2 Configuration:")
	fmt.Println("          factory                            user")
	fmt.Println("   volume │  sample rate            volume │  sample rate")
	fmt.Println("  ┌───────┼────────────────        ┌───────┼────────────────")

	for ch := 0; ch < config.Channels; ch++ {

		// factory values are assumed to always be valid
		fVol := factory.Volume[ch]
		fSpd := factory.SampleRate[ch]

		uVol := "N/A"
		if config.VolumeSet(user.Volume[ch]) {
			uVol = fmt.Sprintf("%3d", user.Volume[ch])
		}

		uRate := "    N/A"
		if config.SampleRateSet(user.SampleRate[ch]) {
			uSpd := user.SampleRate[ch]
			uRate = fmt.Sprintf("%3d (%5.0f hz)",
				uSpd, config.SampleRateHz(uSpd))
		}

		fmt.Printf(" %d│   %3d │ %3d (%5.0f hz)        %d│   %s │ %s\n",
			ch, fVol, fSpd, config.SampleRateHz(fSpd), ch, uVol, uRate)
	}

	return user, nil
}
