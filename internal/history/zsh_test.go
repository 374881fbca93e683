package history

import (
	"testing"
	"time"

	"github.com/chazuruo/refind/internal/testutil"
)

func TestZshParserExtended(t *testing.T) {
	content := `: 1616420000:0;ls -la
: 1616420100:1;git status
: 1616420200:0;echo hello
`
	path := testutil.WriteHistory(t, ".zsh_history", content)

	lines, err := ParseZsh(path)
	if err != nil {
		t.Fatalf("ParseZsh failed: %v", err)
	}

	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	if lines[0].Command != "ls -la" {
		t.Errorf("expected first command 'ls -la', got %q", lines[0].Command)
	}
	if !lines[1].Timestamp.Equal(time.Unix(1616420100, 0)) {
		t.Errorf("expected timestamp 1616420100, got %v", lines[1].Timestamp)
	}
	if lines[2].Shell != "zsh" {
		t.Errorf("expected shell 'zsh', got %q", lines[2].Shell)
	}
}

func TestZshParserMultiLine(t *testing.T) {
	content := `: 1616420000:0;echo "multi \
line"
: 1616420100:0;ls
`
	path := testutil.WriteHistory(t, ".zsh_history", content)

	lines, err := ParseZsh(path)
	if err != nil {
		t.Fatalf("ParseZsh failed: %v", err)
	}

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	want := "echo \"multi\nline\""
	if lines[0].Command != want {
		t.Errorf("expected multi-line command %q, got %q", want, lines[0].Command)
	}
	if lines[1].Command != "ls" {
		t.Errorf("expected second command 'ls', got %q", lines[1].Command)
	}
}

func TestZshParserPlainFallback(t *testing.T) {
	content := `ls -la
git status
`
	path := testutil.WriteHistory(t, ".zsh_history", content)

	lines, err := ParseZsh(path)
	if err != nil {
		t.Fatalf("ParseZsh failed: %v", err)
	}

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Command != "ls -la" {
		t.Errorf("expected 'ls -la', got %q", lines[0].Command)
	}
	if !lines[0].Timestamp.IsZero() {
		t.Errorf("expected zero timestamp for plain history, got %v", lines[0].Timestamp)
	}
}

func TestZshParserMissingFile(t *testing.T) {
	_, err := ParseZsh("/nonexistent/path/.zsh_history")
	if err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
