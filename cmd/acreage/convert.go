package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/acreage/internal/conversion"
	"github.com/at-ishikawa/acreage/internal/practice"
)

type conversionResult struct {
	Direction string `yaml:"direction"`
	Value     string `yaml:"value"`
	Step      string `yaml:"step"`
	Formula   string `yaml:"formula"`
	Answer    string `yaml:"answer"`
	Unit      string `yaml:"unit"`
}

func newConvertCommand() *cobra.Command {
	direction := conversion.DirectionSqftToAcres
	format := formatText

	command := &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert a value and show the steps of the calculation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.OutOrStdout(), args[0], direction, format)
		},
	}
	command.Flags().Var(&direction, "direction", "Conversion direction, sqft-to-acres or acres-to-sqft")
	command.Flags().Var(&format, "format", "Output format, text or yaml")

	return command
}

func runConvert(output io.Writer, value string, direction conversion.Direction, format outputFormat) error {
	v, err := practice.ParseValue(value)
	if err != nil {
		return fmt.Errorf("practice.ParseValue() > %w", err)
	}

	step := conversion.NewStep(direction, v)
	result := conversionResult{
		Direction: string(direction),
		Value:     value,
		Step:      step.Main,
		Formula:   step.Formula,
		Answer:    step.Answer.String(),
		Unit:      strings.ToLower(direction.TargetUnit()),
	}

	switch format {
	case formatYAML:
		encoder := yaml.NewEncoder(output)
		defer func() {
			_ = encoder.Close()
		}()
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("encoder.Encode() > %w", err)
		}
	default:
		if _, err := fmt.Fprintf(output, "%s\n%s\n  %s\n  = %s %s\n",
			direction.Title(), result.Step, result.Formula, result.Answer, result.Unit,
		); err != nil {
			return fmt.Errorf("fmt.Fprintf() > %w", err)
		}
	}
	return nil
}
