package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// BashParser implements Parser for bash history files.
type BashParser struct{}

// NewBashParser creates a new BashParser.
func NewBashParser() *BashParser {
	return &BashParser{}
}

// Parse reads the bash history file at the given path and returns raw lines.
// Bash history format varies:
// - With HISTTIMEFORMAT: #timestamp followed by commands on subsequent lines
// - Without HISTTIMEFORMAT: just commands, one per line
//
// Example with timestamps:
//
//	#1616420000
//	ls -la
//	#1616420100
//	git status
func (p *BashParser) Parse(path string) ([]Line, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bash history: %w", err)
	}
	defer file.Close()

	var lines []Line
	var currentTimestamp time.Time
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	// Regex for timestamp line: #<unix_timestamp>
	timestampRegex := regexp.MustCompile(`^#(\d+)$`)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")

		if line == "" {
			continue
		}

		// Check for timestamp line
		if matches := timestampRegex.FindStringSubmatch(line); matches != nil {
			ts, err := strconv.ParseInt(matches[1], 10, 64)
			if err == nil {
				currentTimestamp = time.Unix(ts, 0)
			}
			continue
		}

		// Other comment lines are not commands
		if strings.HasPrefix(line, "#") {
			continue
		}

		// Handle multi-line commands (continuation with \)
		for strings.HasSuffix(line, "\\") {
			line = strings.TrimSuffix(line, "\\")
			line = strings.TrimRight(line, " \t")
			line += "\n"
			if scanner.Scan() {
				line += scanner.Text()
			}
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lines = append(lines, Line{
			Timestamp: currentTimestamp,
			Command:   line,
			Shell:     "bash",
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading bash history: %w", err)
	}

	return lines, nil
}

// DetectPath returns the default path to the bash history file.
func (p *BashParser) DetectPath() (string, error) {
	if histfile := os.Getenv("HISTFILE"); histfile != "" {
		return histfile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// Check common locations
	locations := []string{
		filepath.Join(home, ".bash_history"),
		filepath.Join(home, ".local/share/bash/history"),
	}

	for _, path := range locations {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	// Return default even if it doesn't exist
	return filepath.Join(home, ".bash_history"), nil
}

// ParseBash is a convenience function that creates a BashParser and parses the given path.
func ParseBash(path string) ([]Line, error) {
	parser := NewBashParser()
	return parser.Parse(path)
}
