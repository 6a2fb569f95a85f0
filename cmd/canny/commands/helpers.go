package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/fivetwenty-io/canny-cli/internal/constants"
	"github.com/fivetwenty-io/canny-cli/pkg/canny"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"

	NotAvailable = "N/A"
	Yes          = "Yes"
	No           = "No"
)

// Common static errors used throughout the commands package.
var (
	ErrIdentifierRequired  = errors.New("at least one identifier flag is required")
	ErrInvalidCustomFields = errors.New("invalid JSON for custom fields")
)

type palette struct {
	green   *color.Color
	red     *color.Color
	yellow  *color.Color
	blue    *color.Color
	cyan    *color.Color
	magenta *color.Color
	bold    *color.Color
	dim     *color.Color
}

func newPalette(noColor bool) palette {
	p := palette{
		green:   color.New(color.FgGreen),
		red:     color.New(color.FgRed),
		yellow:  color.New(color.FgYellow),
		blue:    color.New(color.FgBlue),
		cyan:    color.New(color.FgCyan),
		magenta: color.New(color.FgMagenta),
		bold:    color.New(color.Bold),
		dim:     color.New(color.Faint),
	}

	if noColor {
		for _, c := range []*color.Color{p.green, p.red, p.yellow, p.blue, p.cyan, p.magenta, p.bold, p.dim} {
			c.DisableColor()
		}
	}

	return p
}

// format returns the selected output format. --json wins over --output.
func (rt *Runtime) format() (string, error) {
	if rt.v.GetBool("json") {
		return OutputFormatJSON, nil
	}

	output := strings.ToLower(rt.v.GetString("output"))
	switch output {
	case "", OutputFormatTable:
		return OutputFormatTable, nil
	case OutputFormatJSON, OutputFormatYAML:
		return output, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidOutputValue, output)
	}
}

func (rt *Runtime) structured() bool {
	format, _ := rt.format()

	return format != OutputFormatTable
}

func (rt *Runtime) printJSON(data interface{}) error {
	encoder := json.NewEncoder(rt.stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(data)
}

// printYAML renders data with its JSON field names and key order.
func (rt *Runtime) printYAML(data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	var node yaml.Node

	err = yaml.Unmarshal(raw, &node)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	plainStyle(&node)

	encoder := yaml.NewEncoder(rt.stdout)
	encoder.SetIndent(2)

	err = encoder.Encode(&node)
	if err != nil {
		return err
	}

	return encoder.Close()
}

// plainStyle drops the flow and quoting styles a JSON document parses with.
func plainStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		plainStyle(child)
	}
}

// renderStructured prints data as JSON or YAML when one of those formats is
// selected and reports whether it did.
func (rt *Runtime) renderStructured(data interface{}) (bool, error) {
	format, err := rt.format()
	if err != nil {
		return true, err
	}

	switch format {
	case OutputFormatJSON:
		return true, rt.printJSON(data)
	case OutputFormatYAML:
		return true, rt.printYAML(data)
	default:
		return false, nil
	}
}

type createdOutput struct {
	ID string `json:"id"`
}

type successOutput struct {
	Success bool `json:"success"`
}

// printCreated reports a created resource.
func (rt *Runtime) printCreated(kind, id string) error {
	handled, err := rt.renderStructured(createdOutput{ID: id})
	if handled {
		return err
	}

	_, _ = fmt.Fprintf(rt.stdout, "%s Created %s with ID: %s\n", rt.colors.green.Sprint("✓"), kind, rt.colors.cyan.Sprint(id))

	return nil
}

// printSuccess reports a completed mutation.
func (rt *Runtime) printSuccess(message string) error {
	handled, err := rt.renderStructured(successOutput{Success: true})
	if handled {
		return err
	}

	_, _ = fmt.Fprintf(rt.stdout, "%s %s\n", rt.colors.green.Sprint("✓"), message)

	return nil
}

// notFound prints "<Kind> not found." on stderr and exits with status 1.
func (rt *Runtime) notFound(kind string) error {
	_, _ = fmt.Fprintln(rt.stderr, rt.colors.red.Sprintf("%s not found.", kind))
	rt.exit(1)

	return nil
}

// renderRecord prints a single record, or the not-found message when it is nil.
func renderRecord[T any](rt *Runtime, kind string, record *T, detail func(*T)) error {
	if record == nil {
		return rt.notFound(kind)
	}

	handled, err := rt.renderStructured(record)
	if handled {
		return err
	}

	detail(record)

	return nil
}

// ListView describes how a slice of records is shown in table mode.
type ListView[T any] struct {
	// Plural is used in "No <plural> found." and pagination hints.
	Plural string
	// Title, when set, is printed in bold above the table.
	Title   string
	Headers []string
	Row     func(T) []string
}

// Render prints items in the selected format and reports whether the output
// is complete. Only a rendered table leaves room for a pagination hint.
func (lv *ListView[T]) Render(rt *Runtime, items []T) (bool, error) {
	if items == nil {
		items = []T{}
	}

	handled, err := rt.renderStructured(items)
	if handled {
		return true, err
	}

	if len(items) == 0 {
		_, _ = fmt.Fprintf(rt.stdout, "No %s found.\n", lv.Plural)

		return true, nil
	}

	if lv.Title != "" {
		_, _ = fmt.Fprintln(rt.stdout, rt.colors.bold.Sprint(lv.Title))
	}

	table := tablewriter.NewWriter(rt.stdout)
	table.Header(toCells(lv.Headers)...)

	for _, item := range items {
		_ = table.Append(lv.Row(item))
	}

	err = table.Render()
	if err != nil {
		return true, fmt.Errorf("failed to render table: %w", err)
	}

	return false, nil
}

func toCells(values []string) []any {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}

	return cells
}

// renderOffsetPage renders one offset page and, in table mode, the --skip hint.
func renderOffsetPage[T any](rt *Runtime, lv *ListView[T], page *canny.OffsetPage[T]) error {
	done, err := lv.Render(rt, page.Items)
	if err != nil || done {
		return err
	}

	if page.HasMore {
		_, _ = fmt.Fprintf(rt.stdout, "\n%s Use --skip %d to see more.\n",
			rt.colors.dim.Sprintf("More %s available.", lv.Plural), page.NextSkip())
	}

	return nil
}

// renderCursorPage renders one cursor page and, in table mode, the --cursor hint.
func renderCursorPage[T any](rt *Runtime, lv *ListView[T], page *canny.CursorPage[T]) error {
	done, err := lv.Render(rt, page.Items)
	if err != nil || done {
		return err
	}

	if next, ok := page.NextCursor(); ok {
		_, _ = fmt.Fprintf(rt.stdout, "\n%s Use --cursor %s to see more.\n",
			rt.colors.dim.Sprintf("More %s available.", lv.Plural), next)
	}

	return nil
}

// parseCustomFields validates a JSON flag value. An empty value means the
// field is not sent.
func parseCustomFields(raw string) (json.RawMessage, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var probe interface{}

	err := json.Unmarshal([]byte(raw), &probe)
	if err != nil {
		return nil, canny.NewValidationError("custom-fields", fmt.Sprintf("%v: %v", ErrInvalidCustomFields, err))
	}

	var compact bytes.Buffer

	err = json.Compact(&compact, []byte(raw))
	if err != nil {
		return nil, canny.NewValidationError("custom-fields", fmt.Sprintf("%v: %v", ErrInvalidCustomFields, err))
	}

	return compact.Bytes(), nil
}

// optString returns a pointer to value when the flag was given.
func optString(cmd *cobra.Command, name, value string) *string {
	if cmd.Flags().Changed(name) {
		return &value
	}

	return nil
}

// optBool returns a pointer to value when the flag was given.
func optBool(cmd *cobra.Command, name string, value bool) *bool {
	if cmd.Flags().Changed(name) {
		return &value
	}

	return nil
}

// optFloat returns a pointer to value when the flag was given.
func optFloat(cmd *cobra.Command, name string, value float64) *float64 {
	if cmd.Flags().Changed(name) {
		return &value
	}

	return nil
}

// optStrings returns values when at least one was given.
func optStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	return values
}

func valueOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}

	return *v
}

func intOr(v *int, fallback string) string {
	if v == nil {
		return fallback
	}

	return fmt.Sprintf("%d", *v)
}

func yesNo(v *bool) string {
	if v == nil {
		return NotAvailable
	}

	if *v {
		return Yes
	}

	return No
}

func userName(u *canny.User) string {
	if u == nil {
		return "Unknown"
	}

	return u.Name
}
