package requirement

import (
	"net/url"
	"strings"
)

// Format returns the canonical pip form of r:
//
//	name[extraA,extraB]>=1.0,!=1.2
//	git+git://github.com/org/lib.git#egg=lib
//
// The output is not necessarily identical to the parsed input, but
// parsing it again yields an [Equal] requirement. Format(nil) is "".
func Format(r Requirement) string {
	if r == nil {
		return ""
	}
	return r.String()
}

func (n *Named) String() string {
	var b strings.Builder
	b.WriteString(n.name)
	if n.extras.Size() > 0 {
		b.WriteByte('[')
		b.WriteString(strings.Join(n.Extras(), ","))
		b.WriteByte(']')
	}
	for i, spec := range n.specs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(spec.String())
	}
	return b.String()
}

func (l *Location) String() string {
	if l.name == "" {
		return l.url
	}
	return l.url + "#" + eggKey + "=" + url.QueryEscape(l.name)
}
