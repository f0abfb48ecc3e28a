// internal/writers/registry.go
package writers

import (
	"context"
	"fmt"
	"io"
	"sort"

	"kofamscan/internal/hitdetail"
)

// Report formats.
const (
	FormatDetail        = "detail"
	FormatMapper        = "mapper"
	FormatMapperOneLine = "mapper-one-line"
	FormatJSON          = "json"
	FormatJSONL         = "jsonl"
)

// Report is what every writer renders.
type Report struct {
	Source hitdetail.Source
	Detail hitdetail.Options
}

// WriteFunc renders r to w.
type WriteFunc func(ctx context.Context, w io.Writer, r Report) error

// Writer registry (format → handler). Register in init() blocks from the
// per-format files.
var registry = map[string]WriteFunc{}

// Register adds or replaces (last wins) the writer for format.
func Register(format string, fn WriteFunc) { registry[format] = fn }

// Formats lists the registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Known reports whether a writer is registered for format.
func Known(format string) bool {
	_, ok := registry[format]
	return ok
}

// Write dispatches to the writer registered for format.
func Write(ctx context.Context, format string, w io.Writer, r Report) error {
	fn, ok := registry[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(ctx, w, r)
}
