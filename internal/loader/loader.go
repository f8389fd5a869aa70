// Package loader finds the compressed campaign tables in a directory and
// unions them into one raw table.
package loader

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"

	"github.com/cleared-dev/campaignclean/internal/model"
	"github.com/cleared-dev/campaignclean/internal/table"
)

// Ext is the suffix of an input file.
const Ext = ".csv.zip"

// FileInfo describes a compressed table in the input directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
	Rows int // set by Load
}

// Result is the unified table plus the files it was built from.
type Result struct {
	Table *table.Table
	Files []FileInfo
}

// Scan returns the *.csv.zip files in dir, sorted by name.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &model.MissingInputError{Dir: dir, Err: err}
		}
		return nil, &model.MissingInputError{Dir: dir, Err: fmt.Errorf("reading input dir: %w", err)}
	}

	// os.ReadDir sorts by file name.
	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	if len(files) == 0 {
		return nil, &model.MissingInputError{Dir: dir}
	}
	return files, nil
}

// Load reads every compressed table in dir and concatenates them in
// file-then-row order. Every file must carry the first file's column set;
// a mismatch is a *model.SchemaError naming the file.
func Load(dir string) (*Result, error) {
	files, err := Scan(dir)
	if err != nil {
		return nil, err
	}

	tables := make([]*table.Table, 0, len(files))
	for i := range files {
		t, err := ReadFile(files[i].Path)
		if err != nil {
			return nil, err
		}
		files[i].Rows = t.Len()
		tables = append(tables, t.WithSource(files[i].Name))
	}

	unified, err := table.Concat(tables...)
	if err != nil {
		return nil, fmt.Errorf("concatenating input: %w", err)
	}
	return &Result{Table: unified, Files: files}, nil
}

// ReadFile decompresses a single-member zip archive in memory and parses the
// member as a CSV table.
func ReadFile(path string) (*table.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening archive %s: %w", path, err)
	}

	var members []*zip.File
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		members = append(members, f)
	}
	switch len(members) {
	case 0:
		return nil, fmt.Errorf("archive %s: no file found", path)
	case 1:
	default:
		return nil, fmt.Errorf("archive %s: %d files found, expected one", path, len(members))
	}

	rc, err := members[0].Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s in %s: %w", members[0].Name, path, err)
	}
	defer rc.Close()

	t, err := table.Read(skipBOM(rc))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return t, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// skipBOM drops a leading UTF-8 byte order mark so it does not end up in
// the first column name.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}
