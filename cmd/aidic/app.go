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
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-aidic"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrAidic is a parent error for all command errors.
var ErrAidic = errors.New("aidic")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrAidic)

// ErrOpen indicates that one or more dictionaries could not be opened.
var ErrOpen = fmt.Errorf("%w: opening dictionaries", ErrAidic)

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands that way.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// exitCode returns the process exit code for an error returned by the app.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrFlagParse):
		return ExitCodeFlagParseError
	default:
		return ExitCodeUnknownError
	}
}

// openDictionaries opens all dictionaries under the given directories. Errors
// are written to w.
func openDictionaries(ctx context.Context, w io.Writer, dirs []string, opts *aidic.Options) ([]*aidic.Dictionary, error) {
	var dicts []*aidic.Dictionary
	var errs []error

	for _, path := range dirs {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			opts.Logger.DebugContext(ctx, "skipping missing data directory", "path", path)
			continue
		}

		openDicts, openErrs := aidic.OpenAll(ctx, path, opts)

		dicts = append(dicts, openDicts...)
		errs = append(errs, openErrs...)
	}

	for _, err := range errs {
		fmt.Fprintln(w, err)
	}
	if len(errs) > 0 {
		return dicts, fmt.Errorf("%w: %d errors", ErrOpen, len(errs))
	}
	return dicts, nil
}

func newAidicApp(cfg *config, logger *slog.Logger) *cli.App {
	opts := &aidic.Options{
		Logger: logger,
	}

	dataDirs := cfg.DataDir
	if len(dataDirs) == 0 {
		dataDirs = dictLocations()
	}

	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Read AiDic page image dictionaries.",
		Description: strings.Join([]string{
			"AiDic dictionary utility written in Go.",
			"http://github.com/ianlewis/go-aidic",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "data-dir",
				Usage:   "include dictionaries in `DIR`",
				Aliases: []string{"d"},
				Value:   cli.NewStringSlice(dataDirs...),
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       "2026 Ian Lewis",
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			infoCommand(opts),
			lookupCommand(opts),
			wordsCommand(opts),
		},
	}
}
