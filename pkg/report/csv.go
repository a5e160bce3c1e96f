package report

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kristinawk/bicimad-nearest/pkg"
	"github.com/kristinawk/bicimad-nearest/pkg/datastructure"
)

func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(record(row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the table next to path and renames it into place, so path either holds the
// previous content or the complete new table.
func WriteCSVFile(path string, t Table) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".nearest-*.csv")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := WriteCSV(tmp, t); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func ReadCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = columnCount

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Table{}, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "report is empty")
	}
	if err != nil {
		return Table{}, pkg.WrapErrorf(err, pkg.ErrBadParamInput, "reading report header")
	}

	var rows []datastructure.OutputRow
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, pkg.WrapErrorf(err, pkg.ErrBadParamInput, "reading report")
		}

		bikes, err := strconv.Atoi(strings.TrimSpace(rec[5]))
		if err != nil {
			return Table{}, pkg.WrapErrorf(err, pkg.ErrBadParamInput, "report row for %q", rec[0])
		}
		rows = append(rows, datastructure.OutputRow{
			PlaceTitle:     rec[0],
			CategoryTag:    rec[1],
			PlaceAddress:   rec[2],
			StationName:    rec[3],
			StationAddress: rec[4],
			AvailableBikes: bikes,
		})
	}
	return NewTable(header, rows)
}

func ReadCSVFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()
	return ReadCSV(f)
}
