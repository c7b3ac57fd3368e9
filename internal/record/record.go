// Package record loads line-oriented record files for the viewer.
// Lines that parse as JSON objects expose their top-level members as
// string fields; anything else becomes a plain-text record with a
// single "line" field.
package record

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Record is one line of the backing sequence. Index is the position
// in the loaded file, stable until the file is reloaded.
type Record struct {
	Index  int
	Raw    string
	Fields map[string]string
}

// Field returns the named field, or "" when absent.
func (r Record) Field(name string) string {
	return r.Fields[name]
}

// Summary returns a one-line description for list rendering: the
// "msg"/"message" field when present, otherwise the raw line.
func (r Record) Summary() string {
	if v, ok := r.Fields["msg"]; ok {
		return v
	}
	if v, ok := r.Fields["message"]; ok {
		return v
	}
	return r.Raw
}

// Level returns a normalized severity ("debug", "info", "warn",
// "error", "fatal") from the record's level/severity field, or "".
func (r Record) Level() string {
	v := r.Fields["level"]
	if v == "" {
		v = r.Fields["severity"]
	}
	switch l := strings.ToLower(v); l {
	case "debug", "info", "warn", "error", "fatal":
		return l
	case "warning":
		return "warn"
	case "err":
		return "error"
	}
	return ""
}

// maxLineBytes bounds a single record line. Longer lines fail the
// load rather than silently splitting.
const maxLineBytes = 4 * 1024 * 1024

// Load reads all records from the file at path.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}
	defer f.Close()

	recs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("record: parse %s: %w", path, err)
	}
	return recs, nil
}

// Parse reads newline-delimited records from r. It never fails on
// content; only read errors are reported.
func Parse(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	var recs []Record
	for sc.Scan() {
		line := sc.Text()
		recs = append(recs, Record{
			Index:  len(recs),
			Raw:    line,
			Fields: parseFields(line),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

// parseFields extracts a flat string map from a JSON object line.
// Non-object lines get a single "line" field.
func parseFields(line string) map[string]string {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return map[string]string{"line": line}
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(trimmed), &obj); err != nil {
		return map[string]string{"line": line}
	}

	fields := make(map[string]string, len(obj))
	for k, v := range obj {
		fields[k] = stringify(v)
	}
	return fields
}

// stringify flattens a JSON value to display text. Nested structures
// are re-encoded as compact JSON.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
