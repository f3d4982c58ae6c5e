package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/wells-cli/internal/pipeline"
)

var (
	preprocessInput  string
	preprocessOutput string
)

var preprocessCmd = &cobra.Command{
	Use:   "preprocess",
	Short: "Sanitize and normalize an extract without registry lookups",
	Long: `Runs the offline normalization passes only: OCR artifact cleanup on text
fields, date and production coercion, and coordinate parsing. No network
traffic; remaining empty cells are written as N/A.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		table, err := readInput(cmd.Context(), preprocessInput)
		if err != nil {
			return err
		}
		zap.L().Info("parsed extract", zap.Int("rows", len(table.Records)))

		pipeline.New(pipeline.Options{}).Normalize(table)

		if err := table.WriteCSVFile(preprocessOutput); err != nil {
			return eris.Wrap(err, "preprocess: write output")
		}
		zap.L().Info("wrote output", zap.String("path", preprocessOutput))
		return nil
	},
}

func init() {
	preprocessCmd.Flags().StringVar(&preprocessInput, "input", "", "extract path or http/ftp URL (required)")
	preprocessCmd.Flags().StringVar(&preprocessOutput, "output", "", "output CSV path (required)")
	_ = preprocessCmd.MarkFlagRequired("input")
	_ = preprocessCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(preprocessCmd)
}
