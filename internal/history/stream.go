package history

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// ParseStream reads NUL-delimited history entries from r, the format
// produced by fish's `history -z`. Entries that are not valid UTF-8 are
// skipped rather than surfaced mangled. A missing trailing NUL on the
// final entry is tolerated.
func ParseStream(r io.Reader) ([]Line, error) {
	var lines []Line
	reader := bufio.NewReader(r)

	for {
		chunk, err := reader.ReadBytes('\x00')
		entry := bytes.TrimSuffix(chunk, []byte{0})

		if len(entry) > 0 && utf8.Valid(entry) {
			lines = append(lines, Line{Command: string(entry)})
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return lines, nil
			}
			return nil, fmt.Errorf("error reading history stream: %w", err)
		}
	}
}
