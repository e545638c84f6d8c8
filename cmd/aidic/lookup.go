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
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-aidic"
)

func lookupCommand(opts *aidic.Options) *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Usage:     "Find the page on which a word is printed",
		ArgsUsage: "QUERY",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("%w: missing query", ErrFlagParse)
			}
			query := strings.Join(c.Args().Slice(), " ")

			dicts, openErr := openDictionaries(c.Context, c.App.ErrWriter, c.StringSlice("data-dir"), opts)

			w := c.App.Writer
			for _, d := range dicts {
				fmt.Fprintln(w, d.Name())

				page, err := d.Page(query)
				switch {
				case errors.Is(err, aidic.ErrNotFound):
					fmt.Fprintln(w, "  no page")
				case err != nil:
					return fmt.Errorf("%w: %w", ErrAidic, err)
				default:
					fmt.Fprintf(w, "  page   %s\n", page)
				}

				matches, err := d.Search(query)
				if err != nil {
					return fmt.Errorf("%w: %w", ErrAidic, err)
				}
				for _, m := range matches {
					fmt.Fprintf(w, "  match  %s\n", m)
				}
				fmt.Fprintln(w)
			}

			return openErr
		},
	}
}
