package core_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SchnorcherSepp/splitter/chunk"
	"github.com/SchnorcherSepp/splitter/core"
	impl "github.com/SchnorcherSepp/storage/defaultimpl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeChunks writes chunk files 'report.csv-split-<i>' with the given contents.
func writeChunks(t *testing.T, dir string, chunks map[int]string) []string {
	t.Helper()
	paths := make([]string, 0, len(chunks))
	for i, content := range chunks {
		p := filepath.Join(dir, chunk.ChunkName("report.csv", i))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
		paths = append(paths, p)
	}
	return paths
}

func TestJoin(t *testing.T) {
	dir := t.TempDir()
	outDir := t.TempDir()
	paths := writeChunks(t, dir, map[int]string{1: "aa", 2: "bb", 3: "c", 4: "", 5: "dd"})

	msg, err := core.Join(paths, outDir, impl.DebugHigh)
	require.NoError(t, err)

	out := filepath.Join(outDir, "joined-report.csv")
	assert.Equal(t, "Successful join. Joined file: "+out, msg)
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "aabbcdd", string(b))

	// inputs are kept
	for _, p := range paths {
		_, err := os.Stat(p)
		assert.NoError(t, err)
	}
}

func TestJoin_currentDir(t *testing.T) {
	dir := t.TempDir()
	paths := writeChunks(t, dir, map[int]string{2: "world", 1: "hello "})

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(wd) }()

	msg, err := core.Join(paths, "", impl.DebugOff)
	require.NoError(t, err)
	assert.Equal(t, "Successful join. Joined file: joined-report.csv", msg)

	b, err := os.ReadFile("joined-report.csv")
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(b))
}

func TestJoin_gap(t *testing.T) {
	dir := t.TempDir()
	outDir := t.TempDir()
	paths := writeChunks(t, dir, map[int]string{1: "a", 2: "b", 4: "d"})

	_, err := core.Join(paths, outDir, impl.DebugLow)
	require.Error(t, err)
	assert.Equal(t, chunk.PreconditionFailed, chunk.KindOf(err))
	assert.Contains(t, err.Error(), "Trailing number mismatch")

	// no output created
	_, err = os.Stat(filepath.Join(outDir, "joined-report.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestJoin_duplicate(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	outDir := t.TempDir()
	paths := writeChunks(t, dirA, map[int]string{1: "a", 2: "b"})
	paths = append(paths, writeChunks(t, dirB, map[int]string{1: "x"})...)

	_, err := core.Join(paths, outDir, impl.DebugOff)
	require.Error(t, err)
	assert.Equal(t, chunk.PreconditionFailed, chunk.KindOf(err))
	assert.Contains(t, err.Error(), "Trailing number mismatch")
}

func TestJoin_missingFirst(t *testing.T) {
	dir := t.TempDir()
	paths := writeChunks(t, dir, map[int]string{2: "b", 3: "c"})

	_, err := core.Join(paths, t.TempDir(), impl.DebugOff)
	require.Error(t, err)
	assert.Equal(t, chunk.PreconditionFailed, chunk.KindOf(err))
}

func TestJoin_zeroIndex(t *testing.T) {
	dir := t.TempDir()
	paths := writeChunks(t, dir, map[int]string{0: "a", 1: "b"})

	_, err := core.Join(paths, t.TempDir(), impl.DebugOff)
	require.Error(t, err)
	assert.Equal(t, chunk.PreconditionFailed, chunk.KindOf(err))
}

func TestJoin_outputExists(t *testing.T) {
	dir := t.TempDir()
	outDir := t.TempDir()
	paths := writeChunks(t, dir, map[int]string{1: "a", 2: "b"})

	out := filepath.Join(outDir, "joined-report.csv")
	require.NoError(t, os.WriteFile(out, []byte("keep me"), 0644))

	_, err := core.Join(paths, outDir, impl.DebugOff)
	require.Error(t, err)
	assert.Equal(t, chunk.PreconditionFailed, chunk.KindOf(err))
	assert.Equal(t, "Failed to create output file. "+out+" already exists.", err.Error())

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(b))
}

func TestJoin_noFiles(t *testing.T) {
	_, err := core.Join(nil, t.TempDir(), impl.DebugOff)
	require.Error(t, err)
	assert.Equal(t, chunk.InvalidInput, chunk.KindOf(err))
	assert.Equal(t, "No files were given.", err.Error())
}

func TestJoin_invalidName(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "report.csv")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0644))

	_, err := core.Join([]string{p}, t.TempDir(), impl.DebugOff)
	require.Error(t, err)
	assert.Equal(t, chunk.InvalidInput, chunk.KindOf(err))
	assert.Equal(t, "Invalid filename: report.csv", err.Error())
}

func TestJoin_invalidIndex(t *testing.T) {
	dir := t.TempDir()
	paths := writeChunks(t, dir, map[int]string{1: "a"})
	bad := filepath.Join(dir, "report.csv-split-two")
	require.NoError(t, os.WriteFile(bad, []byte("b"), 0644))

	outDir := t.TempDir()
	_, err := core.Join(append(paths, bad), outDir, impl.DebugOff)
	require.Error(t, err)
	assert.Equal(t, chunk.InvalidInput, chunk.KindOf(err))

	_, err = os.Stat(filepath.Join(outDir, "joined-report.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestJoin_notAFile(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "report.csv-split-1")
	require.NoError(t, os.Mkdir(sub, 0755))

	_, err := core.Join([]string{sub}, t.TempDir(), impl.DebugOff)
	require.Error(t, err)
	assert.Equal(t, chunk.InvalidInput, chunk.KindOf(err))
	assert.Contains(t, err.Error(), "is not a file")

	// later paths are checked too
	paths := writeChunks(t, dir, map[int]string{2: "b"})
	sub2 := filepath.Join(dir, "other")
	require.NoError(t, os.Mkdir(sub2, 0755))
	_, err = core.Join(append(paths, sub2), t.TempDir(), impl.DebugOff)
	require.Error(t, err)
	assert.Equal(t, chunk.InvalidInput, chunk.KindOf(err))
}

func TestJoin_notFound(t *testing.T) {
	dir := t.TempDir()
	_, err := core.Join([]string{filepath.Join(dir, "report.csv-split-1")}, t.TempDir(), impl.DebugOff)
	require.Error(t, err)
	assert.Equal(t, chunk.NotFound, chunk.KindOf(err))

	paths := writeChunks(t, dir, map[int]string{1: "a"})
	_, err = core.Join(append(paths, filepath.Join(dir, "report.csv-split-2")), t.TempDir(), impl.DebugOff)
	require.Error(t, err)
	assert.Equal(t, chunk.NotFound, chunk.KindOf(err))
	assert.Equal(t, "File not found.", err.Error())
}
