package flagset

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/bradfitz/iter"
	"github.com/huandu/xstrings"
	"golang.org/x/xerrors"
)

// Registers a flag for each exported bool, signed integer, float or string
// field of the struct cmd points to, recursing into nested structs. The flag
// name comes from the "name" tag, or the field name in kebab-case, and the
// usage from the "help" tag. A field's current value is its default. Fields
// are updated when ParseErr succeeds, from whichever flag is registered under
// their name at that point.
//
//	var opts struct {
//	    Verbose    bool   `name:"v" help:"log more"`
//	    ListenAddr string `help:"address to serve on"`
//	}
//	fs.Struct(&opts)
func (f *FlagSet) Struct(cmd interface{}) error {
	v := reflect.ValueOf(cmd)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return xerrors.Errorf("expected pointer to struct got %T", cmd)
	}
	return f.addStruct(v.Elem())
}

func (f *FlagSet) addStruct(st reflect.Value) (err error) {
	foreachStructField(st, func(fv reflect.Value, sf reflect.StructField) (stop bool) {
		if sf.PkgPath != "" {
			return false
		}
		if fv.Kind() == reflect.Struct {
			err = f.addStruct(fv)
			return err != nil
		}
		err = f.addField(fv, sf)
		if err != nil {
			err = xerrors.Errorf("error adding flag in %s: %w", st.Type(), err)
		}
		return err != nil
	})
	return
}

func (f *FlagSet) addField(fv reflect.Value, sf reflect.StructField) error {
	name := structFieldFlag(sf)
	usage := sf.Tag.Get("help")
	switch fv.Kind() {
	case reflect.Bool:
		f.Bool(name, fv.Bool(), usage)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f.Int(name, fv.Int(), usage)
	case reflect.Float32, reflect.Float64:
		f.Float(name, fv.Float(), usage)
	case reflect.String:
		f.String(name, fv.String(), usage)
	default:
		return xerrors.Errorf("field %s has bad type: %v", sf.Name, fv.Type())
	}
	f.sinks = append(f.sinks, fieldSink{name, fv})
	return nil
}

// A struct field fed by the flag registered under name.
type fieldSink struct {
	name  string
	field reflect.Value
}

// Converts the value of the flag now registered under the sink's name to the
// field's type. The returned Value is invalid if the flag was redefined with
// a kind the field can't hold, in which case the field is left alone.
func (me fieldSink) convert(flag *Flag) (ret reflect.Value, err error) {
	t := me.field.Type()
	switch v := flag.value.(type) {
	case *boolValue:
		if t.Kind() == reflect.Bool {
			ret = reflect.New(t).Elem()
			ret.SetBool(bool(*v))
		}
	case *intValue:
		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			ret = reflect.New(t).Elem()
			if ret.OverflowInt(int64(*v)) {
				return reflect.Value{}, outOfRange(me.name, v)
			}
			ret.SetInt(int64(*v))
		}
	case *floatValue:
		switch t.Kind() {
		case reflect.Float32, reflect.Float64:
			ret = reflect.New(t).Elem()
			if ret.OverflowFloat(float64(*v)) {
				return reflect.Value{}, outOfRange(me.name, v)
			}
			ret.SetFloat(float64(*v))
		}
	case *stringValue:
		if t.Kind() == reflect.String {
			ret = reflect.New(t).Elem()
			ret.SetString(string(*v))
		}
	}
	return
}

// Copies parsed values into bound struct fields. Every field is checked
// before any is written, so an error leaves all of them untouched.
func (f *FlagSet) publishFields() error {
	values := make([]reflect.Value, len(f.sinks))
	for i, sink := range f.sinks {
		v, err := sink.convert(f.formal[sink.name])
		if err != nil {
			return err
		}
		values[i] = v
	}
	for i, sink := range f.sinks {
		if values[i].IsValid() {
			sink.field.Set(values[i])
		}
	}
	return nil
}

func outOfRange(name string, v value) error {
	return userError{fmt.Sprintf("invalid value %s for flag -%s", v, name), ErrSyntax}
}

func structFieldFlag(sf reflect.StructField) string {
	name := sf.Tag.Get("name")
	if name != "" {
		return name
	}
	return fieldFlagName(sf.Name)
}

// Turns a struct field name into a kebab-case flag name, so ListenAddr
// becomes listen-addr and TCPAddr becomes tcp-addr.
func fieldFlagName(fieldName string) string {
	return strings.Replace(xstrings.ToSnakeCase(fieldName), "_", "-", -1)
}

func foreachStructField(_struct reflect.Value, f func(fv reflect.Value, sf reflect.StructField) (stop bool)) {
	t := _struct.Type()
	for i := range iter.N(t.NumField()) {
		sf := t.Field(i)
		fv := _struct.Field(i)
		if f(fv, sf) {
			break
		}
	}
}
