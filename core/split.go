package core

import (
	"errors"
	"fmt"
	"github.com/SchnorcherSepp/splitter/chunk"
	"github.com/SchnorcherSepp/splitter/units"
	impl "github.com/SchnorcherSepp/storage/defaultimpl"
	"github.com/google/uuid"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Split divides the source file into chunk files smaller than limit (@see chunk.Plan).
// The chunks are stored in a new folder next to the source file (@see chunk.DirName).
// An existing folder is never reused.
//
// If an error occurs after the folder was created, the incomplete folder is left on disk.
func Split(sourcePath string, limit int64, debugLvl uint8) (string, error) {
	// debug (0=off, 1=debug, 2=high)
	debug := debugLvl >= impl.DebugLow
	op := uuid.NewString()

	// check split size
	if limit < chunk.MinSplitSize {
		return "", chunk.Errorf(chunk.InvalidInput, "Split size must be at least %d bytes.", chunk.MinSplitSize)
	}

	// open source
	fh, err := os.Open(sourcePath)
	if err != nil {
		log.Printf("ERROR: %s/Split: %v", packageName, err)
		return "", chunk.Wrap(err, "Failed to open file.")
	}
	defer fh.Close()

	// get file basics
	fileSize, err := getFileSize(fh)
	if err != nil {
		return "", err
	}
	if fileSize < limit {
		return "", chunk.Errorf(chunk.PreconditionFailed, "File length is below split length. Nothing to split.")
	}

	// plan the chunks
	parts, err := chunk.Plan(fileSize, limit)
	if err != nil {
		return "", err
	}
	bufSize := chunk.Max(parts)
	if debug {
		log.Printf("DEBUG: %s/Split[%s]: '%s' (%s) into %d chunks below %s", packageName, op, sourcePath, units.Format(fileSize), len(parts), units.Format(limit))
	}
	checkFreeMemory(bufSize, debug)

	// create chunk folder
	base := filepath.Base(sourcePath)
	dir := filepath.Join(filepath.Dir(sourcePath), chunk.DirName(base))
	if err := os.Mkdir(dir, ChunkDirMode); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", &chunk.Error{
				Kind: chunk.PreconditionFailed,
				Msg:  fmt.Sprintf("Folder %s already exists. Please remove the previous split folder.", dir),
				Err:  err,
			}
		}
		log.Printf("ERROR: %s/Split: %v", packageName, err)
		return "", chunk.Wrap(err, "Failed to create split folder.")
	}

	// CHUNK LOOP
	buf := make([]byte, bufSize)
	for i, size := range parts {
		name := chunk.ChunkName(base, i+1)
		if err := writeChunk(fh, buf[:size], filepath.Join(dir, name)); err != nil {
			log.Printf("ERROR: %s/Split[%s]: chunk %d/%d '%s': %v", packageName, op, i+1, len(parts), name, err)
			return "", err
		}
		if debugLvl >= impl.DebugHigh {
			log.Printf("DEBUG: %s/Split[%s]: chunk %d/%d '%s' (%d bytes)", packageName, op, i+1, len(parts), name, size)
		}
	}

	// success
	return fmt.Sprintf("Successful split. Split folder: %s\n\n"+
		"Note that altering the trailing numbers of the filenames may result in corruption when the files are joined.", dir), nil
}

// ----------  HELPER  -----------------------------------------------------------------------------------------------//

// getFileSize returns the size of an open regular file.
func getFileSize(fh *os.File) (int64, error) {
	st, err := fh.Stat()
	if err != nil {
		return 0, chunk.FromIO(err)
	}
	if !st.Mode().IsRegular() {
		return 0, chunk.Errorf(chunk.InvalidInput, "Given entry is not a file and cannot be split.")
	}
	return st.Size(), nil
}

// writeChunk fills buf from r and writes it to a new file.
// A short read is an error. Existing files are NOT overwritten.
func writeChunk(r io.Reader, buf []byte, path string) error {
	// read chunk data
	if _, err := io.ReadFull(r, buf); err != nil {
		return &chunk.Error{Kind: chunk.IOFailure, Msg: "Failed reading file.", Err: err}
	}

	// write chunk file
	fh, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, ChunkFileMode)
	if err != nil {
		return chunk.Wrap(err, "Failed to create output file.")
	}
	if _, err := fh.Write(buf); err != nil {
		_ = fh.Close()
		return &chunk.Error{Kind: chunk.IOFailure, Msg: "Failed to write output.", Err: err}
	}
	if err := fh.Close(); err != nil {
		return &chunk.Error{Kind: chunk.IOFailure, Msg: "Failed to write output.", Err: err}
	}
	return nil
}
