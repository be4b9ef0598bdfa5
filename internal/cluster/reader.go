package cluster

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// DefaultFile is the name the viewer looks for in the working directory.
const DefaultFile = "cluster.txt"

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

var clusterNamePattern = regexp.MustCompile(`^[A-Za-z]*\d*$`)

var (
	errFieldCount = errors.New("want x, y and cluster name")
	errBadName    = errors.New("invalid cluster name")
)

// ReadFile reads a cluster text file into a new Registry.
func ReadFile(path string) (*Registry, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read parses cluster text from r. Blank lines and lines without any digit
// (table headers) are skipped; every other line must be a data line. The
// first bad line aborts the read and no registry is returned.
func Read(r io.Reader) (*Registry, error) {
	reg := NewRegistry()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if n == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if strings.TrimSpace(line) == "" || isHeader(line) {
			continue
		}
		node, err := ParseLine(line)
		if err != nil {
			return nil, &LineError{Line: n, Text: line, Err: err}
		}
		if err := reg.AddNode(node); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &LineError{Line: n + 1, Err: err}
	}
	return reg, nil
}

// ParseLine parses a single "<x> <y> <cluster>" data line.
func ParseLine(line string) (*Node, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w, got %d fields", errFieldCount, len(fields))
	}
	x, err := ParseAxisValue(fields[0])
	if err != nil {
		return nil, fmt.Errorf("x: %w", err)
	}
	y, err := ParseAxisValue(fields[1])
	if err != nil {
		return nil, fmt.Errorf("y: %w", err)
	}
	name := fields[2]
	if !clusterNamePattern.MatchString(name) {
		return nil, fmt.Errorf("%w: %q", errBadName, name)
	}
	return NewNode(x, y, name), nil
}

// isHeader reports whether line is a worded table header such as "X  Y  Cluster".
func isHeader(line string) bool {
	return !strings.ContainsAny(line, "0123456789")
}

// openInput opens path for reading and maps every failure to ErrNotFound.
func openInput(path string) (*os.File, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return f, nil
}
