// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-aidic"
)

func infoCommand(opts *aidic.Options) *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "List dictionaries and their volumes",
		Action: func(c *cli.Context) error {
			dicts, openErr := openDictionaries(c.Context, c.App.ErrWriter, c.StringSlice("data-dir"), opts)

			w := c.App.Writer
			for _, d := range dicts {
				words := map[string]int{}
				for _, gw := range d.GuideWords() {
					if gw.Word != "" {
						words[gw.FileName]++
					}
				}

				fmt.Fprintf(w, "Name:  %s\n", d.Name())
				tbl := table.New("Volume", "Pages", "Guide Words", "Archive").WithWriter(w)
				for _, v := range d.Volumes() {
					archive := "-"
					if f, ok := d.Archive(v); ok {
						archive = f.Path()
					}
					tbl.AddRow(v, d.PageCounts()[v], words[v], archive)
				}
				tbl.Print()
				fmt.Fprintln(w)
			}

			return openErr
		},
	}
}
