package flagset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintDefaults(t *testing.T) {
	var buf bytes.Buffer
	d := newDemoFlags(&buf)
	d.fs.Bool("v", false, "verbose")
	d.fs.Bool("x", true, "")
	d.fs.String("addr", "", "listen on `address`")
	d.fs.Float("ratio", 0.5, "a `fraction`")
	d.fs.PrintDefaults()
	assert.Equal(t, ""+
		"  -p int\n    \tNetwork port(TCP) (default 1234)\n"+
		"  -h string\n    \tServer host string (default \"localhost\")\n"+
		"  -log\n    \tshow the log\n"+
		"  -race float\n    \tTest the float value\n"+
		"  -v\tverbose\n"+
		"  -x\t (default true)\n"+
		"  -addr address\n    \tlisten on address\n"+
		"  -ratio fraction\n    \ta fraction (default 0.5)\n",
		buf.String())
}

func TestUsageOrderIsRegistrationOrder(t *testing.T) {
	for range [10]struct{}{} {
		var buf bytes.Buffer
		fs := newTestFlagSet(&buf)
		fs.Int("p", 1234, "")
		fs.String("h", "localhost", "")
		fs.Bool("log", false, "")
		var names []string
		fs.VisitAll(func(f *Flag) {
			names = append(names, f.Name)
		})
		assert.Equal(t, []string{"p", "h", "log"}, names)
		fs.PrintDefaults()
		out := buf.String()
		assert.True(t, strings.Index(out, "-p") < strings.Index(out, "-h"))
		assert.True(t, strings.Index(out, "-h") < strings.Index(out, "-log"))
	}
}

func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	fs := NewFlagSet([]string{"./bin/connect"}, Output(&buf), Description("Connects to things."))
	fs.Bool("v", false, "verbose")
	fs.Usage()
	assert.Equal(t, "Usage of connect:\n\nConnects to things.\n  -v\tverbose\n", buf.String())

	buf.Reset()
	fs = NewFlagSet(nil, Output(&buf))
	fs.Usage()
	assert.Equal(t, "Usage:\n", buf.String())
}

func TestNameStyle(t *testing.T) {
	var buf bytes.Buffer
	fs := NewFlagSet([]string{"prog"}, Output(&buf), NameStyle(func(s string) string {
		return "\x1b[0;1m" + s + "\x1b[0m"
	}))
	fs.Int("n", 0, "count")
	fs.PrintDefaults()
	assert.Equal(t, "\x1b[0;1m  -n\x1b[0m int\n    \tcount\n", buf.String())
}

func TestUnquoteUsage(t *testing.T) {
	for _, _case := range []struct {
		kind  Kind
		usage string
		name  string
		out   string
	}{
		{KindString, "a `name` to show", "name", "a name to show"},
		{KindString, "`first` and `second`", "first", "first and `second`"},
		{KindInt, "just `one backtick", "int", "just `one backtick"},
		{KindFloat, "plain", "float", "plain"},
		{KindBool, "plain", "", "plain"},
		{KindBool, "``", "", ""},
	} {
		f := &Flag{Usage: _case.usage, value: newValue(_case.kind)}
		name, usage := UnquoteUsage(f)
		assert.Equal(t, _case.name, name, _case.usage)
		assert.Equal(t, _case.out, usage, _case.usage)
	}
}

func newValue(k Kind) value {
	switch k {
	case KindBool:
		return new(boolValue)
	case KindInt:
		return new(intValue)
	case KindFloat:
		return new(floatValue)
	default:
		return new(stringValue)
	}
}

func TestIsZeroValue(t *testing.T) {
	assert.True(t, isZeroValue("false"))
	assert.True(t, isZeroValue(""))
	assert.True(t, isZeroValue("0"))
	assert.False(t, isZeroValue("0.0"))
	assert.False(t, isZeroValue("true"))
	assert.False(t, isZeroValue("localhost"))
}
