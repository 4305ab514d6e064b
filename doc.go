/*
Package ini reads and writes INI configuration files.

A document is an ordered list of named sections, each holding an ordered
list of fields. Every field stores text; typed accessors interpret that
text on demand without modifying it.

	# comment
	[server]
	port = 8080
	ratio = 0.5

Lines are trimmed of spaces and tabs. Blank lines and lines starting with
the comment marker are ignored. A section header must close on the same
line and may not be empty. Field names and values are trimmed; the
section name is kept exactly as written between the brackets. A later
field with the same name replaces the value of the earlier one, and a
repeated section header merges into the first section of that name.

1. Document Access

Decode a document and read typed values from it:

	doc, err := ini.Parse(data)
	if err != nil {
		// err is a *ini.DecodeError naming the offending line
	}
	f, _ := doc.Get("server", "port")
	port := f.Int().Or(80)

The Try variants (TryDecode, TryLoad) never return errors; they describe
the outcome with a DecodeResult instead. Numeric accessors follow the C
library: the longest valid prefix is converted, out of range values
saturate, and the Conversion records whether the whole text was used.

2. Struct Binding

Marshal and Unmarshal map documents to structs and maps the way
encoding/json does:

	type Config struct {
		Server struct {
			Port    int           `ini:"port"`
			Timeout time.Duration `ini:"timeout,omitempty"`
		} `ini:"server"`
	}

	var cfg Config
	if err := ini.Unmarshal(data, &cfg); err != nil {
		// handle error
	}

The separator and comment characters are configurable with the
Separator and CommentChar options.
*/
package ini
