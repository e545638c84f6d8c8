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

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-aidic"
)

func wordsCommand(opts *aidic.Options) *cli.Command {
	return &cli.Command{
		Name:      "words",
		Usage:     "Print the guide word of every page of a dictionary",
		ArgsUsage: "DIR",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
			}

			d, err := aidic.Open(c.Context, c.Args().First(), opts)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrAidic, err)
			}

			for _, w := range d.GuideWords() {
				fmt.Fprintf(c.App.Writer, "%s\t%d\t%s\n", w.FileName, w.PageNumber, w.Word)
			}
			return nil
		},
	}
}
