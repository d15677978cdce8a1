package main

import (
	"fmt"
	"github.com/alecthomas/kong"
	"os"
	"path"
	"runtime"
)

// version is set by `go build`
var version = "<version>"

// CLI commands (see https://github.com/alecthomas/kong)
var CLI struct {
	Debug int `short:"v" type:"counter" help:"Enable debug mode (-v for DebugLow, -vv for DebugHigh)."`

	Version struct {
	} `cmd:"" help:"Show the program version."`

	Split struct {
		Size string `short:"s"  help:"Split size like '4096', '10MB' or '1.5GiB' (asked interactively if not set)."`
		//-----------------
		File string `arg:"" type:"existingfile"  help:"The file to split."`
	} `cmd:"" help:"Split a file into chunk files in the folder '<file>-split'."`

	Join struct {
		Out string `short:"o" type:"existingdir"  help:"Folder for the joined file (default: current folder)."`
		//-----------------
		Paths []string `arg:""  help:"All chunk files of one split ('<name>-split-<n>')."`
	} `cmd:"" help:"Join chunk files into the file 'joined-<name>'."`

	Open struct {
		Path string `arg:"" type:"path"  help:"A file (split) or a folder with chunk files (join)."`
	} `cmd:"" help:"Split a file or join all chunk files of a folder."`
}

func main() {
	description := "The program splits a file into smaller chunk files and joins them again."
	ctx := kong.Parse(&CLI, kong.UsageOnError(), kong.Description(description))

	c := newCli(uint8(CLI.Debug))
	var msg string
	var err error

	switch ctx.Selected().Name {

	case "version":
		fmt.Printf("%s %s\n", path.Base(os.Args[0]), version)
		fmt.Printf("%s %s/%s (%s)\n", runtime.Version(), runtime.GOOS, runtime.GOARCH, runtime.Compiler)
		return

	case "split":
		msg, err = c.split(CLI.Split.File, CLI.Split.Size)

	case "join":
		msg, err = c.join(CLI.Join.Paths, CLI.Join.Out)

	case "open":
		msg, err = c.open(CLI.Open.Path)

	default:
		panic(fmt.Sprintf("command not implemented: '%s'", ctx.Command()))
	}

	ctx.FatalIfErrorf(err)
	fmt.Println(msg)
}
