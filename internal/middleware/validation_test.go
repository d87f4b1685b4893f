package middleware

import (
	"strings"
	"testing"
)

func TestValidateChannels(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    []string
		wantErr bool
	}{
		{"single handle", []string{"@somechannel"}, []string{"@somechannel"}, false},
		{"single url", []string{"https://youtube.com/@somechannel"}, []string{"https://youtube.com/@somechannel"}, false},
		{"trims whitespace", []string{"  @a  ", "@b"}, []string{"@a", "@b"}, false},
		{"drops blanks", []string{"", "@a", "   "}, []string{"@a"}, false},
		{"nil list", nil, nil, true},
		{"all blank", []string{"", "  "}, nil, true},
		{"too many", repeatRefs(MaxChannels + 1), nil, true},
		{"overlong ref", []string{strings.Repeat("x", MaxRefLen+1)}, nil, true},
		{"exactly max", repeatRefs(MaxChannels), repeatRefs(MaxChannels), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateChannels(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if tt.want != nil {
				if len(got) != len(tt.want) {
					t.Fatalf("got %d refs, want %d", len(got), len(tt.want))
				}
				for i := range got {
					if got[i] != tt.want[i] {
						t.Errorf("ref %d: got %q, want %q", i, got[i], tt.want[i])
					}
				}
			}
		})
	}
}

func repeatRefs(n int) []string {
	refs := make([]string, n)
	for i := range refs {
		refs[i] = "@channel"
	}
	return refs
}

func TestValidateTargetURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"empty is valid", "", "", false},
		{"whitespace only is valid", "   ", "", false},
		{"normal url", "https://youtube.com/watch?v=dQw4w9WgXcQ", "https://youtube.com/watch?v=dQw4w9WgXcQ", false},
		{"trims whitespace", "  https://youtu.be/dQw4w9WgXcQ  ", "https://youtu.be/dQw4w9WgXcQ", false},
		{"too long", "https://youtube.com/watch?v=" + strings.Repeat("x", MaxVideoURLen), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateTargetURL(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
