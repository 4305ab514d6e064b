package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"go.uber.org/zap"

	"github.com/KimNorgaard/go-ini"
)

type MainConfig struct {
	Verbose bool   `cli:"name=v aliases=verbose desc='log decoding details to stderr'"`
	Sep     string `cli:"name=sep desc='field separator character (default =)'"`
	Comment string `cli:"name=comment desc='comment marker character (default #)'"`
	Color   bool   `cli:"name=color desc='color output even when not writing to a terminal'"`

	Main *cli.Command
}

// options turns the global flags into decoding options.
func (cfg *MainConfig) options() ([]ini.Option, error) {
	var opts []ini.Option
	if cfg.Sep != "" {
		c, err := marker("sep", cfg.Sep)
		if err != nil {
			return nil, err
		}
		opts = append(opts, ini.Separator(c))
	}
	if cfg.Comment != "" {
		c, err := marker("comment", cfg.Comment)
		if err != nil {
			return nil, err
		}
		opts = append(opts, ini.CommentChar(c))
	}
	if _, err := ini.NewDocument(opts...); err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return opts, nil
}

func marker(name, v string) (byte, error) {
	if len(v) != 1 {
		return 0, fmt.Errorf("%w: -%s expects a single character, got %q", cli.ErrUsage, name, v)
	}
	return v[0], nil
}

func (cfg *MainConfig) setupLogging() error {
	if !cfg.Verbose {
		return nil
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("unable to create logger: %w", err)
	}
	ini.SetLogger(l)
	return nil
}

// colored reports whether output to w should use colors.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// load decodes the named file, or standard input for "-".
func (cfg *MainConfig) load(cc *cli.Context, file string) (*ini.Document, error) {
	opts, err := cfg.options()
	if err != nil {
		return nil, err
	}
	if file == "-" {
		doc, err := ini.NewDocument(opts...)
		if err != nil {
			return nil, err
		}
		if err := doc.Decode(cc.In); err != nil {
			return nil, fmt.Errorf("error decoding stdin: %w", err)
		}
		return doc, nil
	}
	doc, err := ini.LoadFile(file, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", file, err)
	}
	return doc, nil
}

type palette struct {
	ok, bad, add, del, faint *color.Color
}

func newPalette(enabled bool) *palette {
	p := &palette{
		ok:    color.New(color.FgGreen),
		bad:   color.New(color.FgRed, color.Bold),
		add:   color.New(color.FgGreen),
		del:   color.New(color.FgRed),
		faint: color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.ok, p.bad, p.add, p.del, p.faint} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write result to the source file instead of stdout'"`

	Fmt *cli.Command
}

type GetConfig struct {
	*MainConfig
	Type    string `cli:"name=type aliases=t desc='read the value as string, int, uint, float or bool'"`
	Default string `cli:"name=default aliases=d desc='value printed when the field is missing or invalid'"`

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	Set *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	From string `cli:"name=from aliases=f desc='input format: ini/i, json/j, yaml/y, toml/t'"`
	To   string `cli:"name=to desc='output format: ini/i, json/j, yaml/y, toml/t'"`

	Convert *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
