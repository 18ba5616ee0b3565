package requirement

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/matzehuels/reqdetect/pkg/errors"
)

func TestParseExtras(t *testing.T) {
	tests := []struct {
		input    string
		want     []string
		wantRest string
	}{
		{"[xml, html]", []string{"html", "xml"}, ""},
		{"[xml, html] ~= 1.0", []string{"html", "xml"}, " ~= 1.0"},
		{"[security]>=2.0", []string{"security"}, ">=2.0"},
		{"[]", []string{}, ""},
		{"[ , a ,, ]", []string{"a"}, ""},
		{"[a,a,b]", []string{"a", "b"}, ""},
		{"[Socks]", []string{"Socks"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			extras, rest, err := ParseExtras(tt.input)
			if err != nil {
				t.Fatalf("ParseExtras(%q) error: %v", tt.input, err)
			}
			got := extras.List()
			slices.Sort(got)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ParseExtras(%q) extras mismatch (-want +got):\n%s", tt.input, diff)
			}
			if rest != tt.wantRest {
				t.Errorf("ParseExtras(%q) rest = %q, want %q", tt.input, rest, tt.wantRest)
			}
		})
	}
}

func TestParseExtras_Errors(t *testing.T) {
	for _, input := range []string{
		"[xml, html",
		"xml]",
		"[a[b]]",
		"[bad extra]",
		"[-dash]",
	} {
		t.Run(input, func(t *testing.T) {
			extras, _, err := ParseExtras(input)
			if err == nil {
				t.Fatalf("ParseExtras(%q) = %v, want error", input, extras)
			}
			if !errors.Is(err, errors.ErrCodeMalformedExtras) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeMalformedExtras)
			}
		})
	}
}
