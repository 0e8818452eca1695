package datasource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yanqian/protoform/internal/domain/series"
)

// decodeCSV reads a header row with one time column and one column per
// metric. Blank cells are skipped.
func decodeCSV(r io.Reader, cfg Config) ([]Series, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	timeIdx := -1
	var out []Series
	var columns []int
	for i, name := range header {
		name = strings.TrimSpace(name)
		if strings.EqualFold(name, cfg.TimeColumn) {
			timeIdx = i
			continue
		}
		if name == "" {
			continue
		}
		out = append(out, Series{Metric: name})
		columns = append(columns, i)
	}
	if timeIdx < 0 {
		return nil, fmt.Errorf("time column %q not found", cfg.TimeColumn)
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := reader.FieldPos(0)
		if timeIdx >= len(record) || strings.TrimSpace(record[timeIdx]) == "" {
			continue
		}
		x, err := parseTime(record[timeIdx], cfg)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		for s, col := range columns {
			if col >= len(record) {
				continue
			}
			cell := strings.TrimSpace(record[col])
			if cell == "" {
				continue
			}
			y, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d column %s: invalid number %q", line, out[s].Metric, cell)
			}
			out[s].Points = append(out[s].Points, series.Point{X: x, Y: y})
		}
	}
	return out, nil
}
