package capture

import "testing"

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello world", "hello world"},
		{"color", "\x1b[31mred\x1b[0m plain", "red plain"},
		{"bold multi param", "\x1b[1;32mgreen bold\x1b[0m", "green bold"},
		{"cursor move", "progress\x1b[2K\x1b[1Gdone", "progressdone"},
		{"whitespace kept", "  \tindented \x1b[33mtext\x1b[0m  ", "  \tindented text  "},
		{"escape only", "\x1b[0m", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.in); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
