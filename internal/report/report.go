// Package report renders plain-text summaries of the loaded input and the
// run history.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/cleared-dev/campaignclean/internal/loader"
	"github.com/cleared-dev/campaignclean/internal/runlog"
)

// Table renders rows as a pipe-delimited table padded to display width.
// The first row is the header.
func Table(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}

	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	colWidths := make([]int, colCount)
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}
	// Separator needs at least three dashes.
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	lines := make([]string, 0, len(rows)+1)
	for i, row := range rows {
		lines = append(lines, renderRow(row, colWidths))
		if i == 0 {
			var sb strings.Builder
			sb.WriteString("|")
			for _, w := range colWidths {
				sb.WriteString(" " + strings.Repeat("-", w) + " |")
			}
			lines = append(lines, sb.String())
		}
	}
	return lines
}

func renderRow(row []string, widths []int) string {
	var sb strings.Builder
	sb.WriteString("|")
	for j, w := range widths {
		content := ""
		if j < len(row) {
			content = row[j]
		}
		sb.WriteString(" ")
		sb.WriteString(runewidth.FillRight(content, w))
		sb.WriteString(" |")
	}
	return sb.String()
}

// Input writes the file table and unified column list for a load result.
func Input(w io.Writer, res *loader.Result) error {
	rows := [][]string{{"file", "bytes", "rows"}}
	for _, f := range res.Files {
		rows = append(rows, []string{f.Name, strconv.FormatInt(f.Size, 10), strconv.Itoa(f.Rows)})
	}
	rows = append(rows, []string{"total", "", strconv.Itoa(res.Table.Len())})

	for _, line := range Table(rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	names := res.Table.Names()
	if _, err := fmt.Fprintf(w, "\n%d columns: %s\n", len(names), strings.Join(names, ", ")); err != nil {
		return err
	}
	return nil
}

// History writes one table row per recorded run, oldest first.
func History(w io.Writer, entries []runlog.Entry) error {
	rows := [][]string{{"timestamp", "run_id", "status", "files", "rows", "output", "error"}}
	for _, e := range entries {
		rows = append(rows, []string{
			e.Timestamp.UTC().Format(time.RFC3339),
			e.RunID,
			e.Status,
			strconv.Itoa(e.InputFiles),
			strconv.Itoa(e.Rows),
			e.OutputDir,
			e.Error,
		})
	}

	for _, line := range Table(rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
