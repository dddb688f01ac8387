package flagset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/anacrolix/missinggo/v2"
)

// A FlagSet holds the flags registered for one program invocation and the
// arguments still to be parsed.
type FlagSet struct {
	name          string
	description   string
	noDefaultHelp bool
	output        io.Writer
	nameStyle     func(string) string
	exit          func(code int)

	formal    map[string]*Flag
	actual    map[string]*Flag
	args      []string
	parsed    bool
	nextOrder int

	// Run after a successful parse to publish values to bound struct fields.
	sinks []fieldSink
}

// Creates a FlagSet for argv, whose first element is the program path. The
// program's base name is used in usage and diagnostics.
func NewFlagSet(argv []string, opts ...parseOpt) *FlagSet {
	f := &FlagSet{
		output: os.Stderr,
		exit:   os.Exit,
	}
	if len(argv) != 0 {
		f.name = filepath.Base(argv[0])
		f.args = append([]string(nil), argv[1:]...)
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// The program name the set was created with.
func (f *FlagSet) Name() string { return f.name }

// Whether parsing has been attempted.
func (f *FlagSet) Parsed() bool { return f.parsed }

// The arguments left after parsing. Only arguments following "--" remain
// after a successful parse.
func (f *FlagSet) Args() []string { return f.args }

func (f *FlagSet) NArg() int { return len(f.args) }

// Returns the i'th remaining argument, or "" if there isn't one.
func (f *FlagSet) Arg(i int) string {
	if i < 0 || i >= len(f.args) {
		return ""
	}
	return f.args[i]
}

// Number of flags that have been set by parsing.
func (f *FlagSet) NFlag() int { return len(f.actual) }

// Returns the registered flag with the given name, or nil.
func (f *FlagSet) Lookup(name string) *Flag {
	return f.formal[name]
}

func sortFlags(flags map[string]*Flag) []*Flag {
	list := make([]*Flag, 0, len(flags))
	for _, flag := range flags {
		list = append(list, flag)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].order < list[j].order
	})
	return list
}

// Calls fn for every registered flag, in registration order.
func (f *FlagSet) VisitAll(fn func(*Flag)) {
	for _, flag := range sortFlags(f.formal) {
		fn(flag)
	}
}

// Calls fn for every flag that was set by parsing, in registration order.
func (f *FlagSet) Visit(fn func(*Flag)) {
	for _, flag := range sortFlags(f.actual) {
		fn(flag)
	}
}

func (f *FlagSet) println(a ...interface{}) {
	io.WriteString(f.output, missinggo.Unchomp(fmt.Sprint(a...)))
}

// Registers value under name. A name that is already registered is reported
// and then replaced; registration carries on.
func (f *FlagSet) bind(value value, name, usage string) {
	if _, ok := f.formal[name]; ok {
		if f.name == "" {
			f.println("flag redefined: ", name)
		} else {
			f.println(f.name, " flag redefined: ", name)
		}
	}
	if f.formal == nil {
		f.formal = make(map[string]*Flag)
	}
	f.formal[name] = &Flag{
		Name:     name,
		Usage:    usage,
		DefValue: value.String(),
		order:    f.nextOrder,
		value:    value,
	}
	f.nextOrder++
}

// Registers a bool flag. A bare -name sets it true.
func (f *FlagSet) Bool(name string, value bool, usage string) *BoolHandle {
	v := boolValue(value)
	f.bind(&v, name, usage)
	return &BoolHandle{&v}
}

// Registers a 64-bit signed integer flag.
func (f *FlagSet) Int(name string, value int64, usage string) *IntHandle {
	v := intValue(value)
	f.bind(&v, name, usage)
	return &IntHandle{&v}
}

// Registers a float64 flag.
func (f *FlagSet) Float(name string, value float64, usage string) *FloatHandle {
	v := floatValue(value)
	f.bind(&v, name, usage)
	return &FloatHandle{&v}
}

// Registers a string flag.
func (f *FlagSet) String(name string, value string, usage string) *StringHandle {
	v := stringValue(value)
	f.bind(&v, name, usage)
	return &StringHandle{&v}
}
