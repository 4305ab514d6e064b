package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-ini"
)

var errNoField = errors.New("no such field")

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: get requires a section, a key and optionally a file", cli.ErrUsage)
	}
	file := "-"
	if len(args) == 3 {
		file = args[2]
	}
	doc, err := cfg.load(cc, file)
	if err != nil {
		return err
	}
	v, err := lookup(doc, args[0], args[1], cfg.Type, cfg.Default)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, v)
	return err
}

// lookup returns the text of section.key read as typ. A non-empty def
// replaces a missing or invalid value.
func lookup(doc *ini.Document, section, key, typ, def string) (string, error) {
	f, ok := doc.Get(section, key)
	if !ok {
		if def != "" {
			return def, nil
		}
		return "", fmt.Errorf("%w: %s.%s", errNoField, section, key)
	}

	var (
		v   string
		err error
	)
	switch typ {
	case "", "string", "s":
		return f.Text(), nil
	case "int", "i":
		var n int64
		n, err = f.Int().Checked()
		v = strconv.FormatInt(n, 10)
	case "uint", "u":
		var n uint64
		n, err = f.Uint().Checked()
		v = strconv.FormatUint(n, 10)
	case "float", "f":
		var n float64
		n, err = f.Float().Checked()
		v = strconv.FormatFloat(n, 'g', -1, 64)
	case "bool", "b":
		var b bool
		b, err = f.Bool().Checked()
		v = strconv.FormatBool(b)
	default:
		return "", fmt.Errorf("%w: unknown type %q", cli.ErrUsage, typ)
	}
	if err != nil {
		if def != "" {
			return def, nil
		}
		return "", err
	}
	return v, nil
}
