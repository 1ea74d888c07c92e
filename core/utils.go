package core

import "strings"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

var fsUnsafeReplacer = strings.NewReplacer(
	"/", "-", "\\", "-", ":", "-", "*", "", "?", "",
	"\"", "", "<", "", ">", "", "|", "-", "\x00", "",
)

// SanitizeFilename strips characters that are unsafe in filenames on
// common filesystems.
func SanitizeFilename(s string) string {
	return CleanString(fsUnsafeReplacer.Replace(s))
}
