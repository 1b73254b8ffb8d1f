package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
	"gopkg.in/yaml.v3"
)

// OutputFormat is the value of the --output flag
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// TableFormatter writes aligned columns. Rows are buffered until Flush.
type TableFormatter struct {
	writer  *tabwriter.Writer
	columns []string
	widths  []int
	rows    [][]string
}

// NewTableFormatter creates a table writing to w
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

// Header sets the column titles
func (t *TableFormatter) Header(columns ...string) {
	t.columns = columns
	t.track(columns)
}

// Row adds a row
func (t *TableFormatter) Row(values ...string) {
	t.rows = append(t.rows, values)
	t.track(values)
}

func (t *TableFormatter) track(values []string) {
	for i, v := range values {
		if i >= len(t.widths) {
			t.widths = append(t.widths, 0)
		}
		if w := ansi.PrintableRuneWidth(v); w > t.widths[i] {
			t.widths[i] = w
		}
	}
}

// Flush writes the header, a rule under each column and every row
func (t *TableFormatter) Flush() {
	if len(t.columns) > 0 {
		rules := make([]string, len(t.columns))
		for i := range t.columns {
			rules[i] = strings.Repeat("-", t.widths[i])
		}
		fmt.Fprintln(t.writer, strings.Join(t.columns, "\t"))
		fmt.Fprintln(t.writer, strings.Join(rules, "\t"))
	}
	for _, row := range t.rows {
		fmt.Fprintln(t.writer, strings.Join(row, "\t"))
	}
	t.writer.Flush()
	t.rows = nil
}

// Encode renders data as indented JSON or YAML
func Encode(format string, data interface{}) ([]byte, error) {
	switch OutputFormat(format) {
	case FormatJSON:
		var buf bytes.Buffer
		encoder := json.NewEncoder(&buf)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(data); err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		out, err := yaml.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		return out, nil
	default:
		// Text output is command specific
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// OutputResults writes data to w as JSON or YAML
func OutputResults(w io.Writer, format string, data interface{}) error {
	out, err := Encode(format, data)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// TruncateString shortens s to maxLen display columns, ending in "..." when
// there is room for it
func TruncateString(s string, maxLen int) string {
	if ansi.PrintableRuneWidth(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return truncate.String(s, uint(max(maxLen, 0)))
	}
	return truncate.StringWithTail(s, uint(maxLen), "...")
}

// Checkbox renders a boolean as a text checkbox
func Checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}
