package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/acreage/internal/pdf"
	"github.com/at-ishikawa/acreage/internal/worksheet"
)

func newWorksheetCommand() *cobra.Command {
	var (
		count       int
		outputDir   string
		generatePDF bool
		seed        uint64
	)

	command := &cobra.Command{
		Use:   "worksheet",
		Short: "Generate a printable worksheet of practice problems with an answer key",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if outputDir == "" {
				outputDir = cfg.Outputs.WorksheetDirectory
			}

			generator, err := newGenerator(cfg, seed, "", 0)
			if err != nil {
				return err
			}
			ws, err := worksheet.Build(generator, count)
			if err != nil {
				return fmt.Errorf("worksheet.Build() > %w", err)
			}
			var pdfOptions *pdf.Options
			if generatePDF {
				pdfOptions = &pdf.Options{PageSize: cfg.Outputs.WorksheetPageSize}
			}
			paths, err := worksheet.Output(outputDir, cfg.Templates.WorksheetTemplate, ws, pdfOptions)
			if err != nil {
				return fmt.Errorf("worksheet.Output() > %w", err)
			}
			for _, path := range paths {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Worksheet written to %s\n", path); err != nil {
					return fmt.Errorf("fmt.Fprintf() > %w", err)
				}
			}
			return nil
		},
	}
	command.Flags().IntVar(&count, "count", 10, "Number of problems")
	command.Flags().StringVar(&outputDir, "output", "", "Output directory. outputs.worksheet_directory of the config is used when empty")
	command.Flags().BoolVar(&generatePDF, "pdf", false, "Also convert the worksheet to PDF")
	command.Flags().Uint64Var(&seed, "seed", 0, "Seed of generated problems. Random when 0")

	return command
}
