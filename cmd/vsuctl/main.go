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

package main

import (
	"fmt"
	"os"

	"github.com/glodstone/vsutool/pkg/run"
)

//
var VSUToolVersion string

//
func synopsis() {
	fmt.Print(`
synopsis: vsuctl {dump|restore|game|custom|info|update|version} ...

run 'vsuctl {action} -h|--help' to see detailed info

`)
}

//
func version() {
	fmt.Printf("\nVSUTool %s\n\n", VSUToolVersion)
}

//
func main() {

	var action string
	var args []string

	if len(os.Args) > 1 {
		action = os.Args[1]
	}

	if len(os.Args) > 2 {
		args = os.Args[2:]
	}

	switch action {

	case "dump":
		run.DieOnError(run.NewDump().Execute(args))

	case "restore":
		run.DieOnError(run.NewRestore().Execute(args))

	case "game":
		run.DieOnError(run.NewGame().Execute(args))

	case "custom":
		run.DieOnError(run.NewCustom().Execute(args))

	case "info":
		run.DieOnError(run.NewInfo().Execute(args))

	case "update":
		run.DieOnError(run.NewUpdate().Execute(args))

	case "version":
		version()

	case "":
		fallthrough
	case "-h":
		fallthrough
	case "--help":
		synopsis()

	default:
		run.Die("unknown action: %s\n", action)
	}
}
