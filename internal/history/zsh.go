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

// ZshParser implements Parser for zsh history files.
type ZshParser struct{}

// NewZshParser creates a new ZshParser.
func NewZshParser() *ZshParser {
	return &ZshParser{}
}

// Parse reads the zsh history file at the given path and returns raw lines.
// Zsh extended history format: ": timestamp:elapsed;command"
//
// Example:
//
//	: 1616420000:0;ls -la
//	: 1616420100:1;git status
//
// Multi-line commands are stored with backslash continuation:
//
//	: 1616420200:0;echo "multi \
//	line"
//
// Plain (non-extended) history files contain one bare command per line;
// those are accepted too, with zero timestamps.
func (p *ZshParser) Parse(path string) ([]Line, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open zsh history: %w", err)
	}
	defer file.Close()

	var lines []Line
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	// Extended history entry: ": <timestamp>:<elapsed>;<command>"
	zshRegex := regexp.MustCompile(`^:\s*(\d+):(\d+);(.*)`)

	var currentCmd strings.Builder
	var currentTimestamp time.Time
	var pendingBackslash bool

	flush := func() {
		if currentCmd.Len() == 0 {
			return
		}
		cmd := strings.TrimSpace(currentCmd.String())
		currentCmd.Reset()
		if cmd == "" {
			return
		}
		lines = append(lines, Line{
			Timestamp: currentTimestamp,
			Command:   cmd,
			Shell:     "zsh",
		})
	}

	for scanner.Scan() {
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			continue
		}

		if pendingBackslash && currentCmd.Len() > 0 {
			// Continuation of the previous command: replace the trailing
			// backslash with a literal newline.
			cmdSoFar := strings.TrimSuffix(currentCmd.String(), "\\")
			cmdSoFar = strings.TrimRight(cmdSoFar, " \t")
			currentCmd.Reset()
			currentCmd.WriteString(cmdSoFar)
			currentCmd.WriteString("\n")
			currentCmd.WriteString(line)
			pendingBackslash = strings.HasSuffix(line, "\\")
			continue
		}

		if matches := zshRegex.FindStringSubmatch(line); matches != nil {
			flush()

			ts, err := strconv.ParseInt(matches[1], 10, 64)
			if err == nil {
				currentTimestamp = time.Unix(ts, 0)
			} else {
				currentTimestamp = time.Time{}
			}
			currentCmd.WriteString(matches[3])
			pendingBackslash = strings.HasSuffix(matches[3], "\\")
			continue
		}

		// Plain-format line: a bare command with no timestamp prefix.
		flush()
		currentTimestamp = time.Time{}
		currentCmd.WriteString(line)
		pendingBackslash = strings.HasSuffix(line, "\\")
	}

	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading zsh history: %w", err)
	}

	return lines, nil
}

// DetectPath returns the default path to the zsh history file.
func (p *ZshParser) DetectPath() (string, error) {
	if histfile := os.Getenv("HISTFILE"); histfile != "" {
		return histfile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// Check common locations
	locations := []string{
		filepath.Join(home, ".zsh_history"),
		filepath.Join(home, ".zhistory"),
		filepath.Join(home, ".histfile"),
	}

	for _, path := range locations {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	// Return default even if it doesn't exist
	return filepath.Join(home, ".zsh_history"), nil
}

// ParseZsh is a convenience function that creates a ZshParser and parses the given path.
func ParseZsh(path string) ([]Line, error) {
	parser := NewZshParser()
	return parser.Parse(path)
}
