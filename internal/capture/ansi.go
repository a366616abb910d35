package capture

import "regexp"

// csiPattern matches ANSI CSI escape sequences: ESC [ followed by parameter
// bytes (0x30-0x3f), intermediate bytes (0x20-0x2f), and one final byte
// (0x40-0x7e). Visible text and whitespace are left untouched.
var csiPattern = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]`)

// StripANSI removes CSI escape sequences from line, leaving only the
// visible characters.
func StripANSI(line string) string {
	return csiPattern.ReplaceAllString(line, "")
}
