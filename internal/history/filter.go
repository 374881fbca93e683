package history

import "strings"

// FilterOptions contains options for filtering raw history lines before
// deduplication. The zero value filters nothing: the loader surfaces
// every distinct command unless the user configures otherwise.
type FilterOptions struct {
	// SkipPrefixes drops commands whose first word matches an element.
	SkipPrefixes []string

	// MinLength drops commands shorter than this many bytes.
	MinLength int
}

// FilterLines filters history lines based on the given options.
func FilterLines(lines []Line, opts FilterOptions) []Line {
	if len(opts.SkipPrefixes) == 0 && opts.MinLength == 0 {
		return lines
	}

	result := make([]Line, 0, len(lines))

	for _, line := range lines {
		cmd := strings.TrimSpace(line.Command)

		if opts.MinLength > 0 && len(cmd) < opts.MinLength {
			continue
		}

		if len(opts.SkipPrefixes) > 0 {
			fields := strings.Fields(cmd)
			if len(fields) > 0 && matchesPrefix(fields[0], opts.SkipPrefixes) {
				continue
			}
		}

		result = append(result, line)
	}

	return result
}

func matchesPrefix(word string, prefixes []string) bool {
	for _, p := range prefixes {
		if word == p {
			return true
		}
	}
	return false
}
