package cli

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/reqdetect/pkg/errors"
	"github.com/matzehuels/reqdetect/pkg/manifest"
	"github.com/matzehuels/reqdetect/pkg/requirement"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputTOML = "toml"
)

var outputFormats = []string{outputText, outputJSON, outputTOML}

// record is one parsed line as written by the parse command.
type record struct {
	Line      int                `json:"line" toml:"line"`
	Input     string             `json:"input" toml:"input"`
	Editable  bool               `json:"editable" toml:"editable"`
	Canonical string             `json:"canonical" toml:"canonical"`
	Parsed    requirement.Fields `json:"parsed" toml:"parsed"`
}

func newRecord(e manifest.Entry) record {
	return record{
		Line:      e.Line,
		Input:     strings.TrimSpace(e.Raw),
		Editable:  e.Editable,
		Canonical: requirement.Format(e.Requirement),
		Parsed:    e.Requirement.Fields(),
	}
}

func validateOutput(format string) error {
	for _, f := range outputFormats {
		if f == format {
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported output format %q (want %s)", format, strings.Join(outputFormats, ", "))
}

// writeRecords encodes records to w in the given format.
func writeRecords(w io.Writer, format string, records []record) error {
	switch format {
	case outputJSON:
		if records == nil {
			records = []record{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode json")
		}
	case outputTOML:
		doc := struct {
			Requirements []record `toml:"requirement"`
		}{records}
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode toml")
		}
	default:
		writeText(w, records)
	}
	return nil
}

func writeText(w io.Writer, records []record) {
	for _, r := range records {
		printSuccess(w, "%s", StyleValue.Render(r.Canonical))
		f := r.Parsed
		if f.Name != "" {
			printKeyValue(w, "name", StyleHighlight.Render(f.Name))
		}
		if f.URL != "" {
			printKeyValue(w, "url", StyleLink.Render(f.URL))
		}
		if len(f.VersionSpecs) > 0 {
			specs := make([]string, len(f.VersionSpecs))
			for i, s := range f.VersionSpecs {
				specs[i] = s.String()
			}
			printKeyValue(w, "specs", strings.Join(specs, ", "))
		}
		if len(f.Extras) > 0 {
			printKeyValue(w, "extras", strings.Join(f.Extras, ", "))
		}
		if r.Editable {
			printKeyValue(w, "editable", "yes")
		}
		printKeyValue(w, "line", StyleDim.Render(r.Input))
	}
}
