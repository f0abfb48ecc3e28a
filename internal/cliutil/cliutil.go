// internal/cliutil/cliutil.go
package cliutil

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ExpandPositionals resolves glob patterns among input paths, keeping
// argument order. "-" (stdin) passes through untouched. A pattern that
// matches nothing is an error, and a file named twice is kept once since
// reading it again would duplicate its hits.
func ExpandPositionals(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	seen := make(map[string]struct{}, len(args))
	keep := func(p string) {
		if p != "-" {
			if _, dup := seen[p]; dup {
				return
			}
			seen[p] = struct{}{}
		}
		out = append(out, p)
	}

	for _, a := range args {
		if a == "-" || !strings.ContainsAny(a, "*?[") {
			keep(a)
			continue
		}
		matches, err := filepath.Glob(a)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", a, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no input matched %q", a)
		}
		for _, m := range matches {
			keep(m)
		}
	}
	return out, nil
}
