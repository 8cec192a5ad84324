package main

import (
	"fmt"
	"os"

	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/sensitivity"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		modelPath   string
		sampleCount int
		markdown    bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run a sensitivity analysis against a model",
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := loadModel(modelPath)
			if err != nil {
				return err
			}

			opts := sensitivity.DefaultOptions()
			if sampleCount > 0 {
				opts.SampleCount = sampleCount
			}

			report, err := sensitivity.Analyze(model, opts)
			if err != nil {
				return fmt.Errorf("analyze: %w", err)
			}

			if markdown {
				fmt.Fprintln(os.Stdout, sensitivity.FormatMarkdown(report))
				return nil
			}
			return printJSON(report)
		},
	}

	cmd.Flags().StringVarP(&modelPath, "model", "m", "", "path to a YAML or JSON model file (required)")
	cmd.Flags().IntVar(&sampleCount, "samples", 0, "override the configured sample count")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "print the report as Markdown instead of JSON")
	cmd.MarkFlagRequired("model")

	return cmd
}
