package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"fspgen/internal/bench"
)

// WriteCSV stores the matrix at path: a header "job,m0,m1,..." and one row
// per job. Missing parent directories are created.
func WriteCSV(path string, res bench.Result) error {
	if d := dirOf(path); d != "" {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	inst := res.Instance

	header := make([]string, 0, inst.Machines+1)
	header = append(header, "job")
	for m := 0; m < inst.Machines; m++ {
		header = append(header, "m"+itoa(m))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	row := make([]string, inst.Machines+1)
	for j := 0; j < inst.Jobs; j++ {
		row[0] = itoa(j)
		for m := 0; m < inst.Machines; m++ {
			row[m+1] = itoa(inst.At(m, j))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func dirOf(path string) string {
	d := filepath.Dir(path)
	if d == "." {
		return ""
	}
	return d
}

func itoa(v int) string { return strconv.Itoa(v) }
