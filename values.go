package chainfmt

import (
	"fmt"
	"reflect"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// ValueFormatter renders v for a layer. ok reports whether the formatter
// handled v; when it does not, the next formatter (and finally the built-in
// rendering) is tried. indent is set on layers marked with IndentJSON.
type ValueFormatter func(v any, indent bool) (text string, ok bool, err error)

// ErrorFormatter returns a ValueFormatter for errors only.
func ErrorFormatter(fn func(error) string) ValueFormatter {
	return func(v any, _ bool) (string, bool, error) {
		err, ok := v.(error)
		if !ok {
			return "", false, nil
		}
		return fn(err), true, nil
	}
}

// TypeFormatter returns a ValueFormatter for values of type T.
func TypeFormatter[T any](fn func(T) string) ValueFormatter {
	return func(v any, _ bool) (string, bool, error) {
		value, ok := v.(T)
		if !ok {
			return "", false, nil
		}
		return fn(value), true, nil
	}
}

func (f *Formatter) render(v any, indent bool) (string, error) {
	for _, vf := range f.valueFormatters {
		if vf == nil {
			continue
		}
		text, ok, err := vf(v, indent)
		if err != nil {
			return "", err
		}
		if ok {
			return text, nil
		}
	}
	return renderValue(v, indent)
}

func renderValue(v any, indent bool) (string, error) {
	switch value := v.(type) {
	case string:
		return value, nil
	case []byte:
		return string(value), nil
	case error:
		return FormatError(value), nil
	case fmt.Stringer:
		return value.String(), nil
	case json.Marshaler:
		return marshalJSON(value, indent)
	}
	if isStructured(v) {
		return marshalJSON(v, indent)
	}
	return fmt.Sprint(v), nil
}

func marshalJSON(v any, indent bool) (string, error) {
	var (
		out []byte
		err error
	)
	if indent {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return "", err
	}
	return string(out), nil
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// FormatError renders err as its message. Errors carrying a stack trace
// (github.com/pkg/errors) render as "message -> stack".
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	var st stackTracer
	if errors.As(err, &st) {
		stack := strings.TrimLeft(fmt.Sprintf("%+v", st.StackTrace()), "\n")
		return err.Error() + " -> " + stack
	}
	return err.Error()
}

func isStructured(v any) bool {
	t := reflect.TypeOf(v)
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// isAbsent reports whether v is nil or a nil pointer, interface, map or
// slice. Empty non-nil maps and slices are present.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
