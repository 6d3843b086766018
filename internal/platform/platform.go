package platform

import (
	"runtime"
	"sort"
	"strings"
	"unicode"
)

// IsMac reports whether we run on macOS (darwin).
func IsMac() bool {
	return runtime.GOOS == "darwin"
}

// ReplacePrimaryModifier swaps Ctrl with Cmd in the provided text when on macOS.
func ReplacePrimaryModifier(text string) string {
	if !IsMac() || text == "" {
		return text
	}
	return strings.NewReplacer("Ctrl+", "Cmd+", "ctrl+", "cmd+").Replace(text)
}

// modifierAliases maps every accepted modifier spelling to its canonical name.
// Terminals deliver the command key as ctrl, so cmd folds into ctrl.
var modifierAliases = map[string]string{
	"ctrl": "ctrl", "control": "ctrl", "cmd": "ctrl", "command": "ctrl", "⌘": "ctrl",
	"alt": "alt", "option": "alt", "opt": "alt", "⌥": "alt",
	"shift": "shift", "⇧": "shift",
	"super": "super", "meta": "super", "win": "super", "windows": "super",
}

var modifierOrder = map[string]int{"ctrl": 0, "super": 1, "alt": 2, "shift": 3}

// CanonicalKeyForLookup normalizes a key description so aliases resolve to the
// same string: modifiers are canonicalized, deduplicated and sorted. A
// single letter keeps its case unless it is combined with a modifier.
func CanonicalKeyForLookup(key string) string {
	mods, main := splitKey(key)
	if len(mods) == 0 && len(main) == 0 {
		return ""
	}
	return strings.Join(append(mods, main...), "+")
}

// MatchesKey returns true if two key descriptions should be considered equivalent.
func MatchesKey(actual, binding string) bool {
	return CanonicalKeyForLookup(actual) == CanonicalKeyForLookup(binding)
}

// DisplayKey formats a key binding for UI hints.
func DisplayKey(key string) string {
	mods, main := splitKey(key)
	parts := make([]string, 0, len(mods)+len(main))
	for _, m := range mods {
		switch m {
		case "alt":
			if IsMac() {
				parts = append(parts, "Option")
			} else {
				parts = append(parts, "Alt")
			}
		default:
			parts = append(parts, strings.ToUpper(m[:1])+m[1:])
		}
	}
	for _, p := range main {
		runes := []rune(p)
		parts = append(parts, strings.ToUpper(string(runes[0]))+string(runes[1:]))
	}
	return strings.Join(parts, "+")
}

func splitKey(key string) (mods []string, main []string) {
	seen := make(map[string]bool)
	for _, part := range strings.Split(strings.TrimSpace(key), "+") {
		if part == " " {
			main = append(main, "space")
			continue
		}
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}
		lower := strings.ToLower(p)
		if mod, ok := modifierAliases[lower]; ok {
			if !seen[mod] {
				seen[mod] = true
				mods = append(mods, mod)
			}
			continue
		}
		if r := []rune(p); len(r) == 1 && unicode.IsLetter(r[0]) {
			main = append(main, p)
			continue
		}
		main = append(main, lower)
	}
	if len(mods) > 0 {
		for i, p := range main {
			main[i] = strings.ToLower(p)
		}
	}
	sort.SliceStable(mods, func(i, j int) bool {
		return modifierOrder[mods[i]] < modifierOrder[mods[j]]
	})
	return mods, main
}
