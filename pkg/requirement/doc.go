// Package requirement parses single lines of a pip requirements manifest
// and formats them back into canonical pip syntax.
//
// # Overview
//
// A requirement line names either a package or a location:
//
//	Django==1.5.2                                  named, versioned
//	tablib[xml, html] ~= 1.0                       named, with extras
//	../somelib                                     local path
//	http://example.com/somelib.tar.gz#egg=somelib  archive URL with egg name
//	-e git+ssh://git@github.com/org/lib.git#egg=lib editable VCS checkout
//
// [Parse] returns a [Requirement], which is always exactly one of [*Named]
// or [*Location]. Named requirements carry a lowercased name, ordered
// [VersionSpec] constraints and a set of extras. Locations carry a URL or
// path with its fragment removed, plus the package name taken from an
// `#egg=` fragment when one is present.
//
// # Disambiguation
//
// The grammar is ambiguous by construction, so the classifier applies
// fixed rules in order:
//
//  1. A `#` starts a comment only at the start of the line or after a space
//     or tab; `url#egg=x # note` keeps the fragment and drops the note.
//  2. `-e` and `--editable` markers are removed and not retained, and so
//     are trailing per-requirement options such as `--hash=sha256:...`.
//  3. Lines starting with `.`, `/`, `~`, `\` or a drive letter are paths.
//  4. `scheme://` lines are URLs. Bare VCS schemes (`git://`, `hg://`,
//     `svn://`, `bzr://`) are rewritten as `git+git://` and so on.
//  5. Remaining lines containing a path separator are paths. A location
//     ends at the first space or tab; only a `; marker` may follow it, and
//     it must have a URL or path before any `#` fragment.
//  6. Everything else must be `name [extras] [constraints] [; marker]`.
//
// Version operators are matched longest first, and the first `egg=` key
// of a fragment wins.
//
// # Formatting
//
// [Format] (or String on either variant) produces the canonical form:
// extras sorted, constraints in source order, no whitespace. Parsing the
// formatted output yields an [Equal] requirement.
//
// # Errors
//
// Failures are *errors.Error values coded MALFORMED_REQUIREMENT or
// MALFORMED_EXTRAS. No partial requirement is returned alongside an error.
//
// All functions in this package are pure and safe for concurrent use.
package requirement
