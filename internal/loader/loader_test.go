package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/campaignclean/internal/model"
	"github.com/cleared-dev/campaignclean/internal/testutil"
)

func TestScan_FindsArchives(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteArchive(t, dir, "bank_1.csv.zip", testutil.RawHeader, testutil.DefaultRow("1"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bank.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.zip"), []byte("data"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested.csv.zip"), 0o755))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "bank_1.csv.zip", files[0].Name)
	assert.Equal(t, filepath.Join(dir, "bank_1.csv.zip"), files[0].Path)
	assert.Positive(t, files[0].Size)
}

func TestScan_SortedByName(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"c.csv.zip", "a.csv.zip", "b.csv.zip"} {
		testutil.WriteArchive(t, dir, name, testutil.RawHeader, testutil.DefaultRow("1"))
	}

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "a.csv.zip", files[0].Name)
	assert.Equal(t, "b.csv.zip", files[1].Name)
	assert.Equal(t, "c.csv.zip", files[2].Name)
}

func TestScan_MissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nope")
	_, err := Scan(dir)

	var missing *model.MissingInputError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, dir, missing.Dir)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestScan_NoMatches(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bank.csv"), []byte("data"), 0o644))

	_, err := Scan(dir)
	var missing *model.MissingInputError
	require.True(t, errors.As(err, &missing))
	assert.Nil(t, missing.Err)
	assert.Contains(t, err.Error(), "no *.csv.zip files")
}

func TestLoad_ConcatenatesInFileThenRowOrder(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteArchive(t, dir, "part_b.csv.zip", testutil.RawHeader,
		testutil.DefaultRow("100"), testutil.DefaultRow("101"), testutil.DefaultRow("102"))
	testutil.WriteArchive(t, dir, "part_a.csv.zip", testutil.RawHeader,
		testutil.DefaultRow("1"), testutil.DefaultRow("2"))

	res, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Table.Len())
	assert.Equal(t, testutil.RawHeader, res.Table.Names())

	ids, err := res.Table.Column("client_id")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "100", "101", "102"}, ids)

	require.Len(t, res.Files, 2)
	assert.Equal(t, "part_a.csv.zip", res.Files[0].Name)
	assert.Equal(t, 2, res.Files[0].Rows)
	assert.Equal(t, 3, res.Files[1].Rows)
}

func TestLoad_SchemaMismatch(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteArchive(t, dir, "a.csv.zip", testutil.RawHeader, testutil.DefaultRow("1"))
	testutil.WriteArchive(t, dir, "b.csv.zip", append(testutil.RawHeader[:0:0], testutil.RawHeader[1:]...), testutil.DefaultRow("2"))

	_, err := Load(dir)
	var schemaErr *model.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "b.csv.zip", schemaErr.Source)
	assert.Equal(t, []string{"client_id"}, schemaErr.Missing)
}

func TestLoad_HeaderOnlyArchive(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteArchive(t, dir, "a.csv.zip", testutil.RawHeader, testutil.DefaultRow("1"), testutil.DefaultRow("2"))
	testutil.WriteArchive(t, dir, "b.csv.zip", testutil.RawHeader)

	res, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Table.Len())
	assert.Equal(t, testutil.RawHeader, res.Table.Names())
	require.Len(t, res.Files, 2)
	assert.Equal(t, 0, res.Files[1].Rows)
}

func TestLoad_OnlyHeaderOnlyArchive(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteArchive(t, dir, "a.csv.zip", testutil.RawHeader)

	res, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Table.Len())
	assert.Equal(t, testutil.RawHeader, res.Table.Names())
}

func TestLoad_HeaderOnlyArchiveWithWrongSchema(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteArchive(t, dir, "a.csv.zip", testutil.RawHeader, testutil.DefaultRow("1"))
	testutil.WriteArchive(t, dir, "b.csv.zip", []string{"client_id", "region"})

	_, err := Load(dir)
	var schemaErr *model.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "b.csv.zip", schemaErr.Source)
	assert.Equal(t, []string{"region"}, schemaErr.Extra)
}

func TestReadFile_StripsByteOrderMark(t *testing.T) {
	dir := t.TempDir()
	body := append([]byte{0xEF, 0xBB, 0xBF}, testutil.CSV(t, testutil.RawHeader, testutil.DefaultRow("7"))...)
	path := testutil.WriteZip(t, dir, "bom.csv.zip", map[string][]byte{"bom.csv": body})

	tbl, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testutil.RawHeader, tbl.Names())

	ids, err := tbl.Column("client_id")
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, ids)
}

func TestReadFile_MultipleMembers(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteZip(t, dir, "two.csv.zip", map[string][]byte{
		"a.csv": []byte("x\n1\n"),
		"b.csv": []byte("x\n2\n"),
	})

	_, err := ReadFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "2 files found")
}

func TestReadFile_EmptyArchive(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteZip(t, dir, "empty.csv.zip", map[string][]byte{})

	_, err := ReadFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no file found")
}

func TestReadFile_NotAZip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv.zip")
	require.NoError(t, os.WriteFile(path, []byte("client_id\n1\n"), 0o644))

	_, err := ReadFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "opening archive")
}
