package flagset

import (
	"strconv"
)

// Kind identifies which of the four value variants a flag holds.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindString
)

// Returns the placeholder shown in usage for flags of this kind. Bool flags
// take no value, so theirs is empty.
func (me Kind) String() string {
	switch me {
	case KindBool:
		return ""
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "string"
	}
}

// The closed set of values a flag can hold. The unexported methods keep
// other packages from adding variants or writing through a Flag.
type value interface {
	String() string
	set(s string) error
	kind() Kind
}

type boolValue bool

func (me *boolValue) set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return ErrSyntax
	}
	*me = boolValue(b)
	return nil
}

func (me *boolValue) String() string {
	return strconv.FormatBool(bool(*me))
}

func (*boolValue) kind() Kind { return KindBool }

type intValue int64

func (me *intValue) set(s string) error {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ErrSyntax
	}
	*me = intValue(i)
	return nil
}

func (me *intValue) String() string {
	return strconv.FormatInt(int64(*me), 10)
}

func (*intValue) kind() Kind { return KindInt }

type floatValue float64

func (me *floatValue) set(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ErrSyntax
	}
	*me = floatValue(f)
	return nil
}

func (me *floatValue) String() string {
	return strconv.FormatFloat(float64(*me), 'g', -1, 64)
}

func (*floatValue) kind() Kind { return KindFloat }

type stringValue string

func (me *stringValue) set(s string) error {
	*me = stringValue(s)
	return nil
}

func (me *stringValue) String() string {
	return string(*me)
}

func (*stringValue) kind() Kind { return KindString }

// A read-only view of a bool flag. It reflects whatever the last parse wrote.
type BoolHandle struct {
	v *boolValue
}

func (me *BoolHandle) Get() bool {
	return bool(*me.v)
}

// A read-only view of an int flag.
type IntHandle struct {
	v *intValue
}

func (me *IntHandle) Get() int64 {
	return int64(*me.v)
}

// A read-only view of a float flag.
type FloatHandle struct {
	v *floatValue
}

func (me *FloatHandle) Get() float64 {
	return float64(*me.v)
}

// A read-only view of a string flag.
type StringHandle struct {
	v *stringValue
}

func (me *StringHandle) Get() string {
	return string(*me.v)
}
