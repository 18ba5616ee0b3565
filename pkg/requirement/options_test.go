package requirement

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCutOptions(t *testing.T) {
	tests := []struct {
		input    string
		wantReq  string
		wantOpts []string
	}{
		{"Django==1.0", "Django==1.0", nil},
		{"Django==1.0 --hash=sha256:abc", "Django==1.0", []string{"--hash=sha256:abc"}},
		{"Django==1.0 \t--hash sha256:abc --hash=sha256:def", "Django==1.0", []string{"--hash", "sha256:abc", "--hash=sha256:def"}},
		{"pkg --install-option=--prefix=/opt", "pkg", []string{"--install-option=--prefix=/opt"}},
		{"./pkg --config-settings editable_mode=compat", "./pkg", []string{"--config-settings", "editable_mode=compat"}},
		{"pkg --hashes=x", "pkg --hashes=x", nil},
		{"--hash=sha256:abc", "--hash=sha256:abc", nil},
		{"", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			req, opts := CutOptions(tt.input)
			if req != tt.wantReq {
				t.Errorf("CutOptions(%q) requirement = %q, want %q", tt.input, req, tt.wantReq)
			}
			if diff := cmp.Diff(tt.wantOpts, opts, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("CutOptions(%q) options mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}
