package cluster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var errMissingColumns = errors.New("csv: x, y and cluster columns not found")

// ReadCSVFile reads a CSV file with x, y and cluster columns.
func ReadCSVFile(path string) (*Registry, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV reads cluster nodes from CSV. Column detection is case-insensitive:
// x, y and cluster|name|label. Values follow the same rules as the text format.
func ReadCSV(r io.Reader) (*Registry, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty csv", ErrMalformed)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	idxX, idxY, idxName := -1, -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x":
			if idxX == -1 {
				idxX = i
			}
		case "y":
			if idxY == -1 {
				idxY = i
			}
		case "cluster", "name", "label":
			if idxName == -1 {
				idxName = i
			}
		}
	}
	if idxX == -1 || idxY == -1 || idxName == -1 {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, errMissingColumns)
	}
	reg := NewRegistry()
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		line, _ := cr.FieldPos(0)
		text := strings.Join(row, ",")
		node, err := ParseLine(row[idxX] + " " + row[idxY] + " " + row[idxName])
		if err != nil {
			return nil, &LineError{Line: line, Text: text, Err: err}
		}
		if err := reg.AddNode(node); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
