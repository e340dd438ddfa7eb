package csv

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

var bom = []byte{0xef, 0xbb, 0xbf}

// maxLineSize bounds a single input line.
const maxLineSize = 16 << 20

// Row is one input line split into fields.
type Row []string

// Split strips surrounding whitespace from line and splits it on sep.
// Quotes are not interpreted.
func Split(line, sep string) Row {
	return strings.Split(strings.TrimSpace(line), sep)
}

// Read splits every line of r on sep, in input order. A leading UTF-8 BOM is dropped.
func Read(r io.Reader, sep string) ([]Row, error) {
	br := bufio.NewReader(r)
	if b, err := br.Peek(len(bom)); err == nil && bytes.Equal(b, bom) {
		_, _ = br.Discard(len(bom))
	}

	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(scanLines)

	var rows []Row
	for scanner.Scan() {
		rows = append(rows, Split(scanner.Text(), sep))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// scanLines is bufio.ScanLines that also ends a line at a lone '\r', so files
// saved with old Mac line endings split the same as LF and CRLF files.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// need one more byte to tell "\r" from "\r\n"
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
