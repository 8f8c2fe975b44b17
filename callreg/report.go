package callreg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by WriteReport for unknown formats.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// WriteReport renders snap to w as "table", "json" or "yaml".
// Entries are ordered by identifier in every format.
func WriteReport(w io.Writer, snap Snapshot, format string) error {
	switch format {
	case "table":
		return writeTable(w, snap)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(countsOrEmpty(snap)); err != nil {
			return fmt.Errorf("failed to encode json report: %w", err)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(countsOrEmpty(snap)); err != nil {
			return fmt.Errorf("failed to encode yaml report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func countsOrEmpty(snap Snapshot) map[string]uint64 {
	if snap == nil {
		return map[string]uint64{}
	}
	return snap
}

func writeTable(w io.Writer, snap Snapshot) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FUNCTION\tCALLS")
	for _, name := range snap.Names() {
		fmt.Fprintf(tw, "%s\t%d\n", name, snap[name])
	}
	fmt.Fprintf(tw, "TOTAL\t%d\n", snap.Total())
	return tw.Flush()
}
