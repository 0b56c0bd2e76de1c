package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lmittmann/tint"
	"github.com/pborman/getopt/v2"

	"github.com/coursetools/bbexport-go/pkg/utils"
)

type Opts struct {
	dir string
}

func ParseOpts() Opts {
	// definition
	help := getopt.BoolLong("help", 'h', "Shows the help menu")
	dir := getopt.StringLong("dir", 'd', ".", "Path of the exported course archive. Defaults to the current directory")

	// parsing
	getopt.Parse()

	if *help {
		getopt.Usage()
		os.Exit(0)
	}

	absDir, err := filepath.Abs(*dir)
	if err != nil {
		slog.Error("Could not resolve the --dir flag to an absolute path.", tint.Err(err))
		os.Exit(1)
	}

	dirExists, err := utils.DoFolderExists(absDir)
	if !dirExists {
		slog.Error("You must set the --dir flag to an existing directory.")
		os.Exit(2)
	}
	if err != nil {
		slog.Error("Could not check the --dir flag directory.", tint.Err(err))
		os.Exit(1)
	}

	return Opts{
		dir: absDir,
	}
}
