package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/kristinawk/bicimad-nearest/pkg"
	"github.com/kristinawk/bicimad-nearest/pkg/datastructure"
)

const columnCount = 6

type Table struct {
	Header []string
	Rows   []datastructure.OutputRow
}

func NewTable(header []string, rows []datastructure.OutputRow) (Table, error) {
	if len(header) != columnCount {
		return Table{}, pkg.WrapErrorf(nil, pkg.ErrBadParamInput,
			"report header needs %d columns, got %d", columnCount, len(header))
	}
	h := make([]string, columnCount)
	copy(h, header)
	return Table{Header: h, Rows: rows}, nil
}

// Lookup returns the rows whose place title equals title exactly.
func (t Table) Lookup(title string) ([]datastructure.OutputRow, error) {
	var matches []datastructure.OutputRow
	for _, row := range t.Rows {
		if row.PlaceTitle == title {
			matches = append(matches, row)
		}
	}
	if len(matches) == 0 {
		return nil, pkg.WrapErrorf(nil, pkg.ErrNoMatch, "no place titled %q", title)
	}
	return matches, nil
}

func record(row datastructure.OutputRow) []string {
	return []string{
		row.PlaceTitle,
		row.CategoryTag,
		row.PlaceAddress,
		row.StationName,
		row.StationAddress,
		strconv.Itoa(row.AvailableBikes),
	}
}

// Print writes rows under the table header as aligned columns.
func (t Table) Print(w io.Writer, rows []datastructure.OutputRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(record(row), "\t"))
	}
	return tw.Flush()
}
