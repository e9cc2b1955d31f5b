package cli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ankan123basu/CPUXpert/internal/core"
)

var ErrInvalidArgs = errors.New("invalid args")

// loadProcesses reads "id,arrival,burst[,priority]" rows. A first row whose
// arrival column is not a number is treated as a header; '#' starts a comment.
func loadProcesses(r io.Reader) ([]core.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", ErrInvalidArgs, err)
	}

	processes := make([]core.Process, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("%w: row %d: want 3 or 4 fields, got %d", ErrInvalidArgs, i+1, len(row))
		}
		if i == 0 && !isInt(row[1]) {
			continue
		}
		fields := make([]int, 3)
		for j, raw := range row[1:] {
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: field %d: %v", ErrInvalidArgs, i+1, j+2, err)
			}
			fields[j] = n
		}
		processes = append(processes, core.NewProcess(strings.TrimSpace(row[0]), fields[0], fields[1], fields[2]))
	}
	return processes, nil
}

func isInt(s string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil
}

// readProcesses loads from path, or from stdin when path is "-".
func readProcesses(path string, stdin io.Reader) ([]core.Process, error) {
	if path == "-" {
		return loadProcesses(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return loadProcesses(f)
}
