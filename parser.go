package flagset

import (
	"fmt"
	"strings"
)

// Consumes one flag, and its value if it takes one, from the front of the
// remaining arguments. seen is false when parsing should stop, either
// because the arguments are exhausted, "--" was reached, or there's an error.
func (f *FlagSet) parseOne() (seen bool, err error) {
	if len(f.args) == 0 {
		return
	}
	s := f.args[0]
	if len(s) < 2 || s[0] != '-' {
		err = userError{msg: fmt.Sprintf("unknown identifier: %s", s)}
		return
	}
	numMinuses := 1
	if s[1] == '-' {
		if len(s) == 2 {
			f.args = f.args[1:]
			return
		}
		numMinuses++
	}
	name := s[numMinuses:]
	if len(name) == 0 || name[0] == '-' || name[0] == '=' {
		err = userError{msg: fmt.Sprintf("bad flag syntax: %s", s)}
		return
	}

	f.args = f.args[1:]
	hasValue := false
	value := ""
	if i := strings.IndexByte(name[1:], '='); i >= 0 {
		i++
		value = name[i+1:]
		hasValue = true
		name = name[:i]
	}

	flag, ok := f.formal[name]
	if !ok {
		if (name == "help" || name == "h") && !f.noDefaultHelp {
			err = ErrDefaultHelp
			return
		}
		err = userError{msg: fmt.Sprintf("flag provided but not defined: -%s", name)}
		return
	}

	if flag.isBoolFlag() {
		if hasValue {
			if setErr := flag.value.set(value); setErr != nil {
				err = userError{fmt.Sprintf("invalid boolean value %s for -%s", value, name), setErr}
				return
			}
		} else if setErr := flag.value.set("true"); setErr != nil {
			err = userError{fmt.Sprintf("invalid boolean value for -%s", name), setErr}
			return
		}
	} else {
		// Takes the next argument whatever it looks like.
		if !hasValue && len(f.args) > 0 {
			hasValue = true
			value, f.args = f.args[0], f.args[1:]
		}
		if !hasValue {
			err = userError{msg: fmt.Sprintf("flag needs an argument: -%s", name)}
			return
		}
		if setErr := flag.value.set(value); setErr != nil {
			err = userError{fmt.Sprintf("invalid value %s for flag -%s", value, name), setErr}
			return
		}
	}
	if f.actual == nil {
		f.actual = make(map[string]*Flag)
	}
	f.actual[name] = flag
	seen = true
	return
}

// Parses the remaining arguments, stopping at the first error, which is
// returned. ErrDefaultHelp is returned for an unregistered -h or -help.
func (f *FlagSet) ParseErr() (err error) {
	f.parsed = true
	for {
		var seen bool
		seen, err = f.parseOne()
		if seen {
			continue
		}
		if err != nil {
			return
		}
		break
	}
	return f.publishFields()
}

// Parses the remaining arguments. Errors are written to the output and the
// process exits with status 2. A request for help prints usage and exits 0.
func (f *FlagSet) Parse() {
	err := f.ParseErr()
	if err == nil {
		return
	}
	if err == ErrDefaultHelp {
		f.Usage()
		f.exit(0)
		return
	}
	f.println(err)
	f.exit(2)
}
