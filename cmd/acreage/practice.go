package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/acreage/internal/cli"
	"github.com/at-ishikawa/acreage/internal/conversion"
	"github.com/at-ishikawa/acreage/internal/practice"
)

func newPracticeCommand() *cobra.Command {
	var (
		plain     bool
		direction conversion.Direction
		maxAcres  int
		seed      uint64
	)

	command := &cobra.Command{
		Use:   "practice",
		Short: "Practice converting between acres and square feet",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			generator, err := newGenerator(cfg, seed, direction, maxAcres)
			if err != nil {
				return err
			}
			widget := practice.NewWidget(generator, cfg.Practice.Tolerances())
			if plain {
				return runPlainPractice(cmd, widget)
			}
			return runWidget(cmd.InOrStdin(), cmd.OutOrStdout(), widget)
		},
	}
	command.Flags().BoolVar(&plain, "plain", false, "Use a line based quiz instead of the full screen widget")
	command.Flags().Var(&direction, "direction", "Conversion direction, sqft-to-acres or acres-to-sqft. Random when empty")
	command.Flags().IntVar(&maxAcres, "max-acres", 0, "Largest number of acres of generated problems. The config is used when 0")
	command.Flags().Uint64Var(&seed, "seed", 0, "Seed of generated problems. Random when 0")

	return command
}

func runPlainPractice(cmd *cobra.Command, widget *practice.Widget) error {
	quizCLI := cli.NewPracticeQuizCLI(widget, cmd.InOrStdin(), cmd.OutOrStdout())
	if err := quizCLI.Run(cmd.Context(), quizCLI); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Solved %d, skipped %d\n", quizCLI.Solved(), quizCLI.Skipped()); err != nil {
		return fmt.Errorf("fmt.Fprintf() > %w", err)
	}
	return nil
}

func runWidget(stdin io.Reader, stdout io.Writer, widget *practice.Widget) error {
	program := tea.NewProgram(
		cli.NewWidgetModel(widget),
		tea.WithAltScreen(),
		tea.WithInput(stdin),
		tea.WithOutput(stdout),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("program.Run() > %w", err)
	}
	return nil
}
