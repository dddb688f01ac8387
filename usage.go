package flagset

import (
	"fmt"

	"github.com/anacrolix/missinggo/v2"
)

// Writes the help listing of all registered flags, in registration order.
func (f *FlagSet) PrintDefaults() {
	f.VisitAll(func(flag *Flag) {
		name := "  -" + flag.Name
		s := ""
		placeholder, usage := UnquoteUsage(flag)
		if len(placeholder) > 0 {
			s += " " + placeholder
		}
		// Boolean flags of one letter fit on the same line as their usage.
		if len(name)+len(s) <= 4 {
			s += "\t"
		} else {
			// Four spaces before the tab aligns for both 4- and 8-space tab stops.
			s += "\n    \t"
		}
		s += usage
		if !isZeroValue(flag.DefValue) {
			if flag.Kind() == KindString {
				s += fmt.Sprintf(" (default %q)", flag.DefValue)
			} else {
				s += fmt.Sprintf(" (default %s)", flag.DefValue)
			}
		}
		if f.nameStyle != nil {
			name = f.nameStyle(name)
		}
		f.println(name, s)
	})
}

// Writes the usage header, the description if any, then the flag listing.
func (f *FlagSet) Usage() {
	if f.name == "" {
		f.println("Usage:")
	} else {
		f.println(fmt.Sprintf("Usage of %s:", f.name))
	}
	if f.description != "" {
		f.println("\n" + missinggo.Unchomp(f.description))
	}
	f.PrintDefaults()
}
