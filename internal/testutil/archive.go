// Package testutil builds compressed campaign fixtures for tests.
package testutil

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/require"
)

// RawHeader is the column layout of the bank marketing exports.
var RawHeader = []string{
	"client_id", "age", "job", "marital", "education", "credit_default", "mortgage",
	"month", "day", "contact_duration", "number_contacts", "previous_campaign_contacts",
	"previous_outcome", "cons_price_idx", "euribor_three_months", "campaign_outcome",
}

// Raw is one input row keyed by column name. Columns left unset default to
// a plausible value from DefaultRow.
type Raw map[string]string

// DefaultRow returns a valid raw row for the given client id.
func DefaultRow(clientID string) Raw {
	return Raw{
		"client_id":                  clientID,
		"age":                        "56",
		"job":                        "housemaid",
		"marital":                    "married",
		"education":                  "basic.4y",
		"credit_default":             "no",
		"mortgage":                   "no",
		"month":                      "may",
		"day":                        "13",
		"contact_duration":           "261",
		"number_contacts":            "1",
		"previous_campaign_contacts": "0",
		"previous_outcome":           "nonexistent",
		"cons_price_idx":             "93.994",
		"euribor_three_months":       "4.857",
		"campaign_outcome":           "no",
	}
}

// With returns a copy of r with the given column overridden.
func (r Raw) With(column, value string) Raw {
	out := make(Raw, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	out[column] = value
	return out
}

// Records lays rows out under header.
func Records(header []string, rows ...Raw) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		rec := make([]string, len(header))
		for i, col := range header {
			rec[i] = r[col]
		}
		out = append(out, rec)
	}
	return out
}

// CSV renders header and rows as comma-separated text.
func CSV(t *testing.T, header []string, rows ...Raw) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	require.NoError(t, w.Write(header))
	require.NoError(t, w.WriteAll(Records(header, rows...)))
	return buf.Bytes()
}

// WriteArchive writes a zip archive named name into dir holding a single
// CSV member, and returns its path.
func WriteArchive(t *testing.T, dir, name string, header []string, rows ...Raw) string {
	t.Helper()
	return WriteZip(t, dir, name, map[string][]byte{
		strings.TrimSuffix(name, ".zip"): CSV(t, header, rows...),
	})
}

// WriteZip writes an archive with arbitrary members.
func WriteZip(t *testing.T, dir, name string, members map[string][]byte) string {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for memberName, data := range members {
		w, err := zw.Create(memberName)
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}
