package flagset

import (
	"strings"
)

// A Flag is a registered option. Its value can only be changed by parsing.
type Flag struct {
	Name     string
	Usage    string
	DefValue string

	order int
	value value
}

func (me *Flag) Kind() Kind {
	return me.value.kind()
}

// The current value, rendered as text that would parse back to it.
func (me *Flag) Value() string {
	return me.value.String()
}

// Position in which the flag was registered in its set, starting at 0.
func (me *Flag) Order() int {
	return me.order
}

func (me *Flag) isBoolFlag() bool {
	return me.value.kind() == KindBool
}

// Extracts a back-quoted name from the usage string of a flag and returns it
// along with the usage with the quotes removed. Given "a `name` to show",
// returns ("name", "a name to show"). Without back quotes the name is
// inferred from the flag's kind.
func UnquoteUsage(flag *Flag) (name string, usage string) {
	usage = flag.Usage
	if i := strings.IndexByte(usage, '`'); i >= 0 {
		if j := strings.IndexByte(usage[i+1:], '`'); j >= 0 {
			j += i + 1
			name = usage[i+1 : j]
			usage = usage[:i] + name + usage[j+1:]
			return
		}
	}
	name = flag.Kind().String()
	return
}

func isZeroValue(value string) bool {
	switch value {
	case "false", "", "0":
		return true
	}
	return false
}
