package buildinfo

import "testing"

func TestInfo_String(t *testing.T) {
	tests := []struct {
		info Info
		want string
	}{
		{info: Info{Version: "dev"}, want: "dev"},
		{info: Info{Version: "v0.1.0", Commit: "abcdef"}, want: "v0.1.0 (abcdef)"},
		{info: Info{Version: "v0.1.0", Commit: "abcdef", Date: "2026-10-15"}, want: "v0.1.0 (abcdef, 2026-10-15)"},
	}
	for _, tt := range tests {
		if got := tt.info.String(); got != tt.want {
			t.Fatalf("want %q, got %q", tt.want, got)
		}
	}
}
