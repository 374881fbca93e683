package cli

import "testing"

func TestStreamFromStdin(t *testing.T) {
	tests := []struct {
		name            string
		stdinFlag       bool
		stdinIsTerminal bool
		want            bool
	}{
		{"terminal stdin without flag", false, true, false},
		{"terminal stdin with flag", true, true, true},
		{"piped stdin without flag", false, false, true},
		{"piped stdin with flag", true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := streamFromStdin(tt.stdinFlag, tt.stdinIsTerminal)
			if got != tt.want {
				t.Errorf("streamFromStdin(%v, %v) = %v, want %v",
					tt.stdinFlag, tt.stdinIsTerminal, got, tt.want)
			}
		})
	}
}
