package core

import (
	"bufio"
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
	"sort"
)

// chunkFile is one validated input of Join.
type chunkFile struct {
	path  string
	size  int64
	index int
}

// Join concatenates the chunk files (@see Split) in the order of their sequence index.
// The chunk set must be complete: the indices are exactly 1..len(paths).
// The joined file is created in outDir (current directory if empty) and is never overwritten.
// Chunk files are not removed.
func Join(paths []string, outDir string, debugLvl uint8) (string, error) {
	// debug (0=off, 1=debug, 2=high)
	debug := debugLvl >= impl.DebugLow
	op := uuid.NewString()

	if len(paths) == 0 {
		return "", chunk.Errorf(chunk.InvalidInput, "No files were given.")
	}

	// the first file defines the output name
	base, err := baseName(paths[0])
	if err != nil {
		return "", err
	}

	// read all chunk attributes
	files := make([]chunkFile, 0, len(paths))
	total := int64(0)
	for _, p := range paths {
		cf, err := statChunk(p)
		if err != nil {
			log.Printf("ERROR: %s/Join: '%s': %v", packageName, p, err)
			return "", err
		}
		total += cf.size
		files = append(files, cf)
	}

	// sort and check the chunk set
	// duplicates are not removed: they shift the following indices and fail the check
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].index < files[j].index
	})
	for i, cf := range files {
		if cf.index != i+1 {
			if debug {
				log.Printf("DEBUG: %s/Join[%s]: position %d has index %d ('%s')", packageName, op, i+1, cf.index, cf.path)
			}
			return "", chunk.Errorf(chunk.PreconditionFailed, "Trailing number mismatch. Make sure you provided all split files.")
		}
	}

	// create output file
	outPath := chunk.JoinedName(base)
	if outDir != "" {
		outPath = filepath.Join(outDir, outPath)
	}
	out, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, ChunkFileMode)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", &chunk.Error{
				Kind: chunk.PreconditionFailed,
				Msg:  fmt.Sprintf("Failed to create output file. %s already exists.", outPath),
				Err:  err,
			}
		}
		log.Printf("ERROR: %s/Join: %v", packageName, err)
		return "", chunk.Wrap(err, "Failed to create output file.")
	}
	if debug {
		log.Printf("DEBUG: %s/Join[%s]: %d chunks (%s) into '%s'", packageName, op, len(files), units.Format(total), outPath)
	}

	// copy all chunks
	if err := copyChunks(out, files, total, debugLvl >= impl.DebugHigh); err != nil {
		log.Printf("ERROR: %s/Join[%s]: %v", packageName, op, err)
		_ = out.Close()
		_ = os.Remove(outPath) // don't leave a corrupt joined file
		return "", err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(outPath)
		return "", &chunk.Error{Kind: chunk.IOFailure, Msg: "Failed to write output.", Err: err}
	}

	// success
	return fmt.Sprintf("Successful join. Joined file: %s", outPath), nil
}

// ----------  HELPER  -----------------------------------------------------------------------------------------------//

// baseName checks the first chunk file and returns the original file name.
func baseName(path string) (string, error) {
	st, err := os.Stat(path)
	if err != nil {
		return "", chunk.FromIO(err)
	}
	if !st.Mode().IsRegular() {
		return "", chunk.Errorf(chunk.InvalidInput, "%s is not a file", path)
	}

	base, err := chunk.BaseName(path)
	if err != nil {
		return "", &chunk.Error{Kind: chunk.InvalidInput, Msg: fmt.Sprintf("Invalid filename: %s", filepath.Base(path)), Err: err}
	}
	return base, nil
}

// statChunk opens a chunk file and reads its size and sequence index.
func statChunk(path string) (chunkFile, error) {
	fh, err := os.Open(path)
	if err != nil {
		return chunkFile{}, chunk.FromIO(err)
	}
	defer fh.Close()

	st, err := fh.Stat()
	if err != nil {
		return chunkFile{}, chunk.FromIO(err)
	}
	if !st.Mode().IsRegular() {
		return chunkFile{}, chunk.Errorf(chunk.InvalidInput, "%s is not a file", path)
	}

	index, err := chunk.Index(path)
	if err != nil {
		return chunkFile{}, &chunk.Error{Kind: chunk.InvalidInput, Msg: err.Error(), Err: err}
	}

	return chunkFile{path: path, size: st.Size(), index: index}, nil
}

// copyChunks appends all chunk files to w.
// The number of copied bytes must be total.
func copyChunks(w io.Writer, files []chunkFile, total int64, debug bool) error {
	bw := bufio.NewWriterSize(w, writeBufferSize)
	sum := int64(0)

	for _, cf := range files {
		n, err := copyChunk(bw, cf.path)
		sum += n
		if err != nil {
			return err
		}
		if debug {
			log.Printf("DEBUG: %s/copyChunks: chunk %d '%s' (%d bytes)", packageName, cf.index, cf.path, n)
		}
	}

	if err := bw.Flush(); err != nil {
		return &chunk.Error{Kind: chunk.IOFailure, Msg: "Failed to write output.", Err: err}
	}

	// size check: the chunk files have changed in the meantime
	if sum != total {
		return chunk.Errorf(chunk.IOFailure, "Failed reading file. Chunk size changed: %d != %d bytes.", sum, total)
	}
	return nil
}

// copyChunk appends the content of one chunk file to w.
func copyChunk(w io.Writer, path string) (int64, error) {
	fh, err := os.Open(path)
	if err != nil {
		return 0, chunk.FromIO(err)
	}
	defer fh.Close()

	n, err := io.Copy(w, fh)
	if err != nil {
		return n, &chunk.Error{Kind: chunk.IOFailure, Msg: "Failed to write output.", Err: err}
	}
	return n, nil
}
