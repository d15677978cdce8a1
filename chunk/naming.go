package chunk

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Naming scheme:
//   source file:  report.csv
//   directory:    report.csv-split
//   chunk files:  report.csv-split-1 ... report.csv-split-N
//   joined file:  joined-report.csv

// DirName returns the name of the chunk directory for a source file name.
func DirName(base string) string {
	return base + DirSuffix
}

// ChunkName returns the file name of the chunk with the 1-based index i.
func ChunkName(base string, i int) string {
	return DirName(base) + Separator + strconv.Itoa(i)
}

// JoinedName returns the file name of a joined file.
func JoinedName(base string) string {
	return JoinedPrefix + base
}

// Index returns the sequence index of a chunk file.
// It is the number after the last separator of the file name.
func Index(name string) (int, error) {
	name = filepath.Base(name)
	if !utf8.ValidString(name) {
		return 0, ErrInvalidText
	}

	pos := strings.LastIndex(name, Separator)
	if pos < 0 {
		return 0, fmt.Errorf("%w: %s", ErrNoIndex, name)
	}

	i, err := strconv.Atoi(name[pos+len(Separator):])
	if err != nil || i < 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidIndex, name)
	}
	return i, nil
}

// BaseName returns the original file name of a chunk file.
// The last two segments (DirSuffix and index) are removed. The segments themselves are not checked.
//
// Example: report.csv-split-3 -> report.csv
func BaseName(name string) (string, error) {
	name = filepath.Base(name)
	if !utf8.ValidString(name) {
		return "", ErrInvalidText
	}

	base := name
	for n := 0; n < 2; n++ {
		pos := strings.LastIndex(base, Separator)
		if pos < 0 {
			return "", fmt.Errorf("%w: %s", ErrInvalidName, name)
		}
		base = base[:pos]
	}

	if base == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidName, name)
	}
	return base, nil
}
