package flagset

import (
	"io"
)

type parseOpt func(f *FlagSet)

// Don't treat unregistered -h and -help as a request for usage.
func NoDefaultHelp() parseOpt {
	return func(f *FlagSet) {
		f.noDefaultHelp = true
	}
}

// Writes program description between the usage header and option help.
func Description(desc string) parseOpt {
	return func(f *FlagSet) {
		f.description = desc
	}
}

// Sets where diagnostics and usage are written. Defaults to os.Stderr.
func Output(w io.Writer) parseOpt {
	return func(f *FlagSet) {
		f.output = w
	}
}

// Applies style to the "  -name" column of the usage listing, for example to
// embolden it on a terminal.
func NameStyle(style func(string) string) parseOpt {
	return func(f *FlagSet) {
		f.nameStyle = style
	}
}
