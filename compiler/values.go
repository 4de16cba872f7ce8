package compiler

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/delaneyj/plate/dom"
)

// ParseBool recognizes the literals "true" and "false" only.
func ParseBool(s string) (value bool, ok bool) {
	switch s {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// Truthy is false for nil, false, zero numbers, NaN and the empty string.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// Stringify renders a model value for text content. nil renders empty,
// floats print like JavaScript numbers and plain maps as [object Object].
func Stringify(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return formatNumber(v, 64)
	case float32:
		return formatNumber(float64(v), 32)
	case map[string]any:
		return "[object Object]"
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(v)
}

// formatNumber uses plain decimals for 1e-6 <= |f| < 1e21 and exponent
// form otherwise, with no zero padding in the exponent.
func formatNumber(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	s := strconv.FormatFloat(f, 'e', -1, bitSize)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}

func displayNode(node *dom.Node, value any) {
	if Truthy(value) {
		node.SetDisplay("block")
		return
	}
	node.SetDisplay("none")
}

func updateText(node *dom.Node, value any) {
	node.SetText(Stringify(value))
}

func updateModel(node *dom.Node, value any) {
	node.SetValue(Stringify(value))
}
