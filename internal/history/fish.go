package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// FishParser implements Parser for fish history files.
type FishParser struct{}

// NewFishParser creates a new FishParser.
func NewFishParser() *FishParser {
	return &FishParser{}
}

// Parse reads the fish history file at the given path and returns raw lines.
// Fish history is a sequence of YAML-ish records:
//
//	- cmd: git status
//	  when: 1616420000
//	- cmd: echo one\ntwo
//	  when: 1616420100
//	  paths:
//	    - /tmp
//
// The command text is stored on a single line with \n and \\ escapes.
// Records are parsed line by line rather than with a YAML decoder so that
// one malformed record cannot abort the whole load.
func (p *FishParser) Parse(path string) ([]Line, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fish history: %w", err)
	}
	defer file.Close()

	var lines []Line
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var current *Line

	for scanner.Scan() {
		line := scanner.Text()

		if cmd, ok := strings.CutPrefix(line, "- cmd: "); ok {
			if current != nil && current.Command != "" {
				lines = append(lines, *current)
			}
			current = &Line{
				Command: unescapeFish(cmd),
				Shell:   "fish",
			}
			continue
		}

		if current == nil {
			continue
		}

		if when, ok := strings.CutPrefix(line, "  when: "); ok {
			ts, err := strconv.ParseInt(strings.TrimSpace(when), 10, 64)
			if err == nil {
				current.Timestamp = time.Unix(ts, 0)
			}
		}
		// Other record fields (paths etc.) are ignored.
	}

	if current != nil && current.Command != "" {
		lines = append(lines, *current)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading fish history: %w", err)
	}

	return lines, nil
}

// unescapeFish undoes fish's single-line command encoding.
func unescapeFish(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// DetectPath returns the default path to the fish history file.
func (p *FishParser) DetectPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(home, ".local", "share")
	}

	// fish_history is the default session name; fish supports others via
	// the fish_history variable, but refind is fed by `history -z` in that
	// case anyway.
	return filepath.Join(dataHome, "fish", "fish_history"), nil
}

// ParseFish is a convenience function that creates a FishParser and parses the given path.
func ParseFish(path string) ([]Line, error) {
	parser := NewFishParser()
	return parser.Parse(path)
}
