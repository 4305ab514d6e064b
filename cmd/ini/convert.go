package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-ini/internal/convert"
)

func convertFile(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: convert takes at most one file", cli.ErrUsage)
	}
	file := "-"
	if len(args) == 1 {
		file = args[0]
	}

	from, to, err := cfg.formats(file)
	if err != nil {
		return err
	}
	opts, err := cfg.options()
	if err != nil {
		return err
	}

	var r io.Reader = cc.In
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("error opening %s: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", file, err)
	}
	doc, err := convert.Decode(data, from, opts...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	return convert.Encode(cc.Out, doc, to)
}

// formats resolves the input and output formats. The input format
// defaults to the one named by the file extension, then to ini.
func (cfg *ConvertConfig) formats(file string) (from, to convert.Format, err error) {
	from = convert.INI
	if f, ok := convert.FormatOf(file); ok {
		from = f
	}
	if cfg.From != "" {
		if from, err = convert.ParseFormat(cfg.From); err != nil {
			return from, to, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	to = convert.INI
	if cfg.To != "" {
		if to, err = convert.ParseFormat(cfg.To); err != nil {
			return from, to, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	return from, to, nil
}
