// Package shellhook generates the shell-side key-binding integration.
//
// Each script binds ctrl-r to run refind with the current line buffer as
// the seed query, and splices the selection back into the buffer only
// when refind exits 0. Scripts are printed for the user to eval from
// their rc file; refind never edits shell configuration itself.
package shellhook

import "fmt"

// HookGenerator generates shell hooks for the reverse-search binding.
type HookGenerator struct {
	// Binary is the refind executable name or path used inside the hook.
	Binary string
}

// NewHookGenerator creates a hook generator for the given binary name.
func NewHookGenerator(binary string) *HookGenerator {
	if binary == "" {
		binary = "refind"
	}
	return &HookGenerator{Binary: binary}
}

// GenerateBashHook generates the bash binding. bash exposes the line
// editor state to bind -x handlers via READLINE_LINE/READLINE_POINT.
func (h *HookGenerator) GenerateBashHook() string {
	return fmt.Sprintf(`# refind key binding
__refind_search() {
    local selected
    selected="$(%s --query "$READLINE_LINE")" || return
    READLINE_LINE="$selected"
    READLINE_POINT=${#READLINE_LINE}
}
bind -x '"\C-r": __refind_search'
`, h.Binary)
}

// GenerateZshHook generates the zsh binding as a zle widget.
func (h *HookGenerator) GenerateZshHook() string {
	return fmt.Sprintf(`# refind key binding
_refind-search-widget() {
    local selected
    selected="$(%s --query "$BUFFER")"
    if [[ $? -eq 0 && -n "$selected" ]]; then
        BUFFER="$selected"
        CURSOR=${#BUFFER}
    fi
    zle reset-prompt
    return 0
}
zle -N _refind-search-widget
bindkey '^R' _refind-search-widget
`, h.Binary)
}

// GenerateFishHook generates the fish binding. fish pipes its own history
// in NUL-delimited form, so multi-line commands survive the round trip.
func (h *HookGenerator) GenerateFishHook() string {
	return fmt.Sprintf(`# refind key binding
function _refind_search
    set -l selected (history -z | %s --stdin --query (commandline) | string split0)
    if test $status -eq 0; and test -n "$selected"
        commandline -r -- $selected
    end
    commandline -f repaint
end
bind \cr _refind_search
`, h.Binary)
}

// Script returns the hook script for the given shell.
func (h *HookGenerator) Script(shell string) (string, error) {
	switch shell {
	case "bash":
		return h.GenerateBashHook(), nil
	case "zsh":
		return h.GenerateZshHook(), nil
	case "fish":
		return h.GenerateFishHook(), nil
	default:
		return "", fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish)", shell)
	}
}

// Shells lists the shells with hook support.
func Shells() []string {
	return []string{"bash", "zsh", "fish"}
}
