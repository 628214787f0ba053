package templates

import (
	"bytes"
	"encoding/json"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"gopkg.in/yaml.v3"
)

// basicFunctions are the set of initial functions provided to every template.
var basicFunctions = template.FuncMap{
	"json": func(v interface{}) string {
		buf := &bytes.Buffer{}
		enc := json.NewEncoder(buf)
		enc.SetEscapeHTML(false)
		enc.Encode(v)
		// Remove the trailing new line added by the encoder
		return strings.TrimSpace(buf.String())
	},
	"toPrettyJson": func(v interface{}) string {
		buf := &bytes.Buffer{}
		enc := json.NewEncoder(buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "    ")
		enc.Encode(v)
		return strings.TrimSpace(buf.String())
	},
	"toYaml": func(v interface{}) string {
		// Round-trip through JSON so custom MarshalJSON implementations
		// shape the YAML output as well.
		data, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		var decoded interface{}
		if err := json.Unmarshal(data, &decoded); err != nil {
			return ""
		}
		out, err := yaml.Marshal(decoded)
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(out))
	},
	"split":    strings.Split,
	"join":     strings.Join,
	"title":    strings.Title,
	"lower":    strings.ToLower,
	"upper":    strings.ToUpper,
	"pad":      padWithSpace,
	"truncate": truncateWithLength,
}

// HeaderFunctions are used to created headers of a table.
// This is a replacement of basicFunctions for header generation
// because we want the header to remain intact.
// Some functions like `pad` are not overridden (to preserve alignment
// with the columns).
var HeaderFunctions = template.FuncMap{
	"json": func(v string) string {
		return v
	},
	"toPrettyJson": func(v string) string {
		return v
	},
	"toYaml": func(v string) string {
		return v
	},
	"split": func(v string, _ string) string {
		// Skips the split function
		return v
	},
	"join": func(v string, _ string) string {
		// Skips the join function
		return v
	},
	"title": func(v string) string {
		// Skips the title function
		return v
	},
	"lower": func(v string) string {
		// Skips the lower function
		return v
	},
	"upper": func(v string) string {
		// Skips the upper function
		return v
	},
	"truncate": func(v string, _ int) string {
		// Skips the truncate function
		return v
	},
}

// Parse creates a new anonymous template with the basic functions
// and parses the given format.
func Parse(format string) (*template.Template, error) {
	return NewParse("", format)
}

// New creates a new empty template with the basic functions.
func New(tag string) *template.Template {
	return template.New(tag).Funcs(basicFunctions).Funcs(sprig.GenericFuncMap())
}

// NewParse creates a new tagged template with the basic functions
// and parses the given format.
func NewParse(tag, format string) (*template.Template, error) {
	return New(tag).Parse(format)
}

// padWithSpace adds whitespace to the input if the input is non-empty
func padWithSpace(source string, prefix, suffix int) string {
	if source == "" {
		return source
	}
	return strings.Repeat(" ", prefix) + source + strings.Repeat(" ", suffix)
}

// truncateWithLength truncates the source string up to the length provided by
// the input
func truncateWithLength(source string, length int) string {
	if len(source) < length {
		return source
	}
	return source[:length]
}
