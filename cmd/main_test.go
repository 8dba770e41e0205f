package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RyanHill92/housing/internal/housing"
	"github.com/RyanHill92/housing/internal/records"
)

const sampleHouses = `4
1 A1 1000 2 red available
2 B1 850 3 red booked
3 A2 1200 4 blue booked
4 z9 500 1 red available
`

func writeLoadFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "houses.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out strings.Builder
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_Session(t *testing.T) {
	path := writeLoadFile(t, sampleHouses)

	out, err := execute(t, "a 1 n 1 a 4 r 1", path)
	require.NoError(t, err)
	require.Contains(t, out, "House 1 is available\n")
	require.Contains(t, out, "You have 2 neighbors!\n")
	require.Contains(t, out, "House 4 doesn't exist\n")
	require.True(t, strings.HasSuffix(out, "Congrats, you rented a house! Hope your door knobs don't fall off\n"))
}

func TestRoot_NoLoadFile(t *testing.T) {
	_, err := execute(t, "q")
	require.ErrorIs(t, err, errNoLoadFile)
}

func TestRoot_MissingLoadFile(t *testing.T) {
	_, err := execute(t, "q", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, records.ErrFileNotFound)
}

func TestRoot_AbortOnBadLot(t *testing.T) {
	path := writeLoadFile(t, sampleHouses)

	_, err := execute(t, "q", "--on-load-error", "abort", path)
	require.Error(t, err)

	var malformed *housing.MalformedLotError
	require.ErrorAs(t, err, &malformed)
	require.Equal(t, "z9", malformed.Lot)
}

func TestRoot_SmallGrid(t *testing.T) {
	path := writeLoadFile(t, "2\n1 A1 1 1 red available\n2 A2 1 1 red available\n")

	out, err := execute(t, "a 1 a 2 q", "--rows", "1", path)
	require.NoError(t, err)
	require.Contains(t, out, "House 1 is available\n")
	require.Contains(t, out, "House 2 doesn't exist\n")
}

func TestRoot_InvalidConfig(t *testing.T) {
	path := writeLoadFile(t, sampleHouses)

	_, err := execute(t, "q", "--cols", "30", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "grid.cols")
}

func TestRoot_ConfigFile(t *testing.T) {
	path := writeLoadFile(t, sampleHouses)
	cfgPath := filepath.Join(t.TempDir(), "housing.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("load:\n  on_error: abort\n"), 0644))

	_, err := execute(t, "q", "--config", cfgPath, path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "record 4")
}

func TestImport_ThenQuerySQLite(t *testing.T) {
	path := writeLoadFile(t, sampleHouses)
	dbPath := filepath.Join(t.TempDir(), "houses.db")

	out, err := execute(t, "", "import", "--source", "sqlite", "--sqlite-path", dbPath, path)
	require.NoError(t, err)
	require.Equal(t, "imported 4 of 4 houses\n", out)

	out, err = execute(t, "", "import", "--source", "sqlite", "--sqlite-path", dbPath, path)
	require.NoError(t, err)
	require.Equal(t, "imported 0 of 4 houses\n", out)

	out, err = execute(t, "a 3 r 1", "--source", "sqlite", "--sqlite-path", dbPath)
	require.NoError(t, err)
	require.Contains(t, out, "Sorry, House 3 is not available\n")
	require.Contains(t, out, "Congrats")
}

func TestRoot_SQLiteWithoutImport(t *testing.T) {
	_, err := execute(t, "q", "--source", "sqlite", "--sqlite-path", filepath.Join(t.TempDir(), "fresh.db"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "error checking house table")
}

func TestImport_NeedsDatabase(t *testing.T) {
	path := writeLoadFile(t, sampleHouses)

	_, err := execute(t, "", "import", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "--source sqlite or mysql")
}

func TestExport_YAML(t *testing.T) {
	path := writeLoadFile(t, sampleHouses)

	out, err := execute(t, "", "export", path)
	require.NoError(t, err)

	houses, err := records.ParseYAML(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, houses, 4)
	require.Equal(t, housing.Booked, houses[1].Availability)
}

func TestSQLiteSourceRejectsLoadFile(t *testing.T) {
	path := writeLoadFile(t, sampleHouses)

	_, err := execute(t, "q", "--source", "sqlite", "--sqlite-path", filepath.Join(t.TempDir(), "x.db"), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "given with source sqlite")
}
