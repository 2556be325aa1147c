package protoclass

import (
	"fmt"
	"strings"
)

func (k ValueKind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindMethod:
		return "method"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.data.(string)
	case KindNil:
		return ""
	case KindBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case KindInt:
		return fmt.Sprintf("%d", v.data.(int64))
	case KindFloat:
		return fmt.Sprintf("%g", v.data.(float64))
	case KindArray:
		elems := v.data.([]Value)
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = e.String()
		}
		return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
	case KindMethod:
		return fmt.Sprintf("<method %s>", v.data.(*BoundMethod).Name)
	case KindObject:
		return v.data.(*Object).String()
	default:
		return fmt.Sprintf("<%v>", v.kind)
	}
}

// Inspect renders the value the way a literal would be written, quoting
// strings. Used by the REPL and Object.String.
func (v Value) Inspect() string {
	switch v.kind {
	case KindString:
		return fmt.Sprintf("%q", v.data.(string))
	case KindNil:
		return "nil"
	case KindArray:
		elems := v.data.([]Value)
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = e.Inspect()
		}
		return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
	default:
		return v.String()
	}
}
