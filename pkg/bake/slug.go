package bake

import "strings"

// reservedSlugWords are JavaScript reserved words, so a manifest's slugs
// are always safe to embed as object keys in any downstream target.
var reservedSlugWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "debugger": true, "default": true,
	"delete": true, "do": true, "else": true, "export": true,
	"extends": true, "finally": true, "for": true, "function": true,
	"if": true, "import": true, "in": true, "instanceof": true,
	"new": true, "return": true, "super": true, "switch": true,
	"this": true, "throw": true, "try": true, "typeof": true,
	"var": true, "void": true, "while": true, "with": true,
	"yield": true, "let": true, "static": true, "enum": true,
	"await": true, "implements": true, "package": true, "private": true,
	"protected": true, "public": true, "interface": true, "null": true,
	"true": true, "false": true,
	// "unnamed" is also reserved, since it's this function's own
	// placeholder for an empty name — without that, re-sanitizing an
	// already-sanitized "_unnamed" would trim the underscore away and
	// never add it back, breaking idempotency.
	"unnamed": true,
}

// SanitizeSlug lowercases name, replaces every non-alphanumeric rune with
// an underscore, trims leading/trailing underscores, and prefixes an
// underscore if the result starts with a digit or collides with a
// reserved word. An empty name becomes "_unnamed".
func SanitizeSlug(name string) string {
	lower := strings.ToLower(name)
	var b strings.Builder
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	s := strings.Trim(b.String(), "_")

	if s == "" {
		s = "unnamed"
	}
	if s[0] >= '0' && s[0] <= '9' {
		s = "_" + s
	}
	if reservedSlugWords[s] {
		s = "_" + s
	}
	return s
}
