package main

import (
	"bufio"
	"errors"
	"github.com/SchnorcherSepp/splitter/chunk"
	"github.com/SchnorcherSepp/splitter/core"
	"github.com/SchnorcherSepp/splitter/units"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"io"
	"os"
	"path/filepath"
)

// cli connects the terminal with the core functions.
type cli struct {
	in       *bufio.Reader
	out      io.Writer
	errOut   io.Writer
	printer  *message.Printer
	debugLvl uint8
}

func newCli(debugLvl uint8) *cli {
	return &cli{
		in:       bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		errOut:   os.Stderr,
		printer:  message.NewPrinter(language.English),
		debugLvl: debugLvl,
	}
}

// split shows the file length and splits the file.
// If sizeStr is empty, the split size is read from the terminal.
func (c *cli) split(filePath, sizeStr string) (string, error) {
	st, err := os.Stat(filePath)
	if err != nil {
		return "", chunk.Wrap(err, "Failed to open file.")
	}
	_, _ = c.printer.Fprintf(c.out, "File length: %d\n", st.Size())

	var size int64
	if sizeStr != "" {
		size, err = units.ParseSize(sizeStr)
		if err != nil {
			return "", &chunk.Error{Kind: chunk.InvalidInput, Msg: err.Error() + ".", Err: err}
		}
	} else {
		size, err = c.askSplitSize()
		if err != nil {
			return "", err
		}
	}

	return core.Split(filePath, size, c.debugLvl)
}

// join joins the chunk files into outDir (current folder if empty).
func (c *cli) join(paths []string, outDir string) (string, error) {
	return core.Join(paths, outDir, c.debugLvl)
}

// open splits a file or joins all files of a folder.
func (c *cli) open(p string) (string, error) {
	st, err := os.Stat(p)
	switch {
	case err == nil && st.IsDir():
		paths, err := listDir(p)
		if err != nil {
			return "", err
		}
		return c.join(paths, "")

	case err == nil && st.Mode().IsRegular():
		return c.split(p, "")

	default:
		return "", chunk.Errorf(chunk.NotFound, "File or directory not found: %s", p)
	}
}

// askSplitSize reads the split size from the terminal until it is valid.
func (c *cli) askSplitSize() (int64, error) {
	for {
		_, _ = io.WriteString(c.out, "Split size:  ")

		line, err := c.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return 0, &chunk.Error{Kind: chunk.IOFailure, Msg: "Failed to read input.", Err: err}
		}

		size, perr := units.ParseSize(line)
		if perr == nil && size < chunk.MinSplitSize {
			perr = errors.New("Split size too small")
		}
		if perr == nil {
			return size, nil
		}
		_, _ = c.printer.Fprintf(c.errOut, "%v. Please try again.\n", perr)
	}
}

// ----------  HELPER  -----------------------------------------------------------------------------------------------//

// listDir returns the paths of all folder elements.
func listDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, chunk.FromIO(err)
	}
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}
