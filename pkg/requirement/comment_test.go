package requirement

import "testing"

func TestStripComment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no comment", "celery == 0.1", "celery == 0.1"},
		{"space comment", "celery == 0.1 # comment", "celery == 0.1"},
		{"tab comment", "celery == 0.1\t# comment", "celery == 0.1"},
		{"comment with url", "somelib == 0.15 # pinned (https://github.com/owner/repo/issues/111)", "somelib == 0.15"},
		{"fragment kept", "http://example.com/somelib.tar.gz#egg=somelib", "http://example.com/somelib.tar.gz#egg=somelib"},
		{"fragment and comment", "http://example.com/somelib.tar.gz#egg=somelib # url comment http://foo.com/bar", "http://example.com/somelib.tar.gz#egg=somelib"},
		{"whole line comment", "# just a comment", ""},
		{"indented comment", "   # indented", ""},
		{"surrounding whitespace", "  requests  ", "requests"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripComment(tt.input); got != tt.want {
				t.Errorf("StripComment(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
