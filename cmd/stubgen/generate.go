package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/srg/btmock/internal/stubgen"
)

func newGenerateCmd() *cobra.Command {
	var (
		manifestPath string
		outputPath   string
		check        bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a stub file from a manifest",
		Long: `Render the Stub for the API described by a manifest and write it to the
output file. With --check nothing is written; the command fails with a unified
diff when the file on disk differs from what the manifest would produce.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := configureLogger(cmd, "verbose")
			if err != nil {
				return err
			}

			// All arguments validated - don't show usage on runtime errors
			cmd.SilenceUsage = true

			return runGenerate(cmd, logger, manifestPath, outputPath, check)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "stubs.yaml", "Manifest describing the API")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "stub_gen.go", "Generated file path")
	cmd.Flags().BoolVar(&check, "check", false, "Verify the output file is up to date instead of writing it")

	return cmd
}

func runGenerate(cmd *cobra.Command, logger *logrus.Logger, manifestPath, outputPath string, check bool) error {
	m, err := stubgen.LoadManifest(manifestPath)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"manifest":  manifestPath,
		"package":   m.Package,
		"functions": len(m.Functions),
	}).Debug("Loaded manifest")

	if !check {
		if err := stubgen.Generate(m, outputPath); err != nil {
			return err
		}
		logger.WithField("output", outputPath).Info("Generated stub")
		fmt.Fprintf(cmd.OutOrStdout(), "Generated %s (%d functions)\n", outputPath, len(m.Functions))
		return nil
	}

	src, err := stubgen.Render(m)
	if err != nil {
		return err
	}
	diff, err := stubgen.Diff(outputPath, src)
	if err != nil {
		return err
	}
	if diff == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", outputPath)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), colorizeDiff(diff))
	return fmt.Errorf("%w: %s", ErrStale, outputPath)
}

// colorizeDiff colors diff lines; fatih/color disables itself when stdout is not a terminal.
func colorizeDiff(diff string) string {
	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++"):
			lines[i] = color.YellowString("%s", line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = color.CyanString("%s", line)
		case strings.HasPrefix(line, "-"):
			lines[i] = color.RedString("%s", line)
		case strings.HasPrefix(line, "+"):
			lines[i] = color.GreenString("%s", line)
		}
	}
	return strings.Join(lines, "\n")
}
