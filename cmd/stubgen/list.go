package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/srg/btmock/internal/stubgen"
	"github.com/srg/btmock/pkg/config"
	"gopkg.in/yaml.v3"
)

type listedGroup struct {
	Group     string             `json:"group" yaml:"group"`
	Functions []stubgen.Function `json:"functions" yaml:"functions"`
}

func newListCmd() *cobra.Command {
	var (
		manifestPath string
		format       string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the operations declared by a manifest",
		Long: `List the operations declared by a manifest, grouped in manifest order,
with the identifier each one records and its default result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			cfg.ReportFormat = format
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := configureLogger(cmd, "verbose")
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			m, err := stubgen.LoadManifest(manifestPath)
			if err != nil {
				return err
			}
			logger.WithField("manifest", manifestPath).Debug("Listing manifest")

			return writeListing(cmd.OutOrStdout(), m, format)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "stubs.yaml", "Manifest describing the API")
	cmd.Flags().StringVarP(&format, "format", "f", config.DefaultConfig().ReportFormat,
		fmt.Sprintf("Output format (%s)", strings.Join(config.ReportFormats, ", ")))

	return cmd
}

func writeListing(w io.Writer, m *stubgen.Manifest, format string) error {
	groups := m.Groups()
	listed := make([]listedGroup, 0, groups.Len())
	for pair := groups.Oldest(); pair != nil; pair = pair.Next() {
		listed = append(listed, listedGroup{Group: pair.Key, Functions: pair.Value})
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(listed)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(listed); err != nil {
			return err
		}
		return enc.Close()
	}

	header := color.New(color.Bold)
	fmt.Fprintf(w, "%s.%s (%d functions)\n", m.Package, m.Interface, len(m.Functions))
	for _, g := range listed {
		fmt.Fprintln(w)
		header.Fprintf(w, "[%s]\n", g.Group)

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "METHOD\tIDENTIFIER\tDEFAULT")
		for _, fn := range g.Functions {
			def := fn.Default
			if fn.Returns == "" {
				def = "-"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", fn.Method, fn.Name, def)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}
