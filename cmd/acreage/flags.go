package main

import (
	"fmt"

	"github.com/spf13/pflag"
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatYAML outputFormat = "yaml"
)

var (
	_ pflag.Value = (*outputFormat)(nil)
)

func (f *outputFormat) Set(v string) error {
	switch v {
	case string(formatText):
		*f = formatText
	case string(formatYAML):
		*f = formatYAML
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, formatText, formatYAML)
	}
	return nil
}

func (f *outputFormat) String() string {
	return string(*f)
}

func (f *outputFormat) Type() string {
	return "Format"
}
