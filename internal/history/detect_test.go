package history

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectShell(t *testing.T) {
	tests := []struct {
		name  string
		shell string
		want  string
	}{
		{"full path", "/usr/bin/zsh", "zsh"},
		{"bare name", "fish", "fish"},
		{"unset defaults to bash", "", "bash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SHELL", tt.shell)
			if got := DetectShell(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDetectHistoryFiles(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))

	if found := DetectHistoryFiles(); len(found) != 0 {
		t.Fatalf("expected no files in empty home, got %d", len(found))
	}

	fishDir := filepath.Join(home, ".local", "share", "fish")
	if err := os.MkdirAll(fishDir, 0700); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	for _, path := range []string{
		filepath.Join(home, ".zsh_history"),
		filepath.Join(fishDir, "fish_history"),
	} {
		if err := os.WriteFile(path, []byte(""), 0600); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	found := DetectHistoryFiles()
	if len(found) != 2 {
		t.Fatalf("expected 2 files, got %d", len(found))
	}
	if found[0].Shell != "zsh" {
		t.Errorf("expected zsh first, got %q", found[0].Shell)
	}
	if found[1].Shell != "fish" {
		t.Errorf("expected fish second, got %q", found[1].Shell)
	}
}

func TestNewParser(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish"} {
		if NewParser(shell) == nil {
			t.Errorf("expected parser for %q, got nil", shell)
		}
	}
	if NewParser("tcsh") != nil {
		t.Error("expected nil parser for unsupported shell")
	}
}
