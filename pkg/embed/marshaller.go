package embed

import (
	"github.com/Bhargee/KRewrites/internal/evaluator"
)

// Data is the native rendering of an applied constructor value.
type Data struct {
	Name   string
	Fields []interface{}
}

// Location is the native rendering of a store location.
type Location struct {
	Addr int
}

// Marshal converts a runtime value to a native Go value: int64, bool,
// string, []interface{} for lists, Data for constructors and Location
// for store addresses. Closures and continuations have no native form and are
// rendered as their display string.
func Marshal(obj evaluator.Object) interface{} {
	switch v := obj.(type) {
	case *evaluator.Integer:
		return v.Value
	case *evaluator.Boolean:
		return v.Value
	case *evaluator.String:
		return v.Value
	case *evaluator.List:
		out := make([]interface{}, len(v.Elements))
		for i, el := range v.Elements {
			out[i] = Marshal(el)
		}
		return out
	case *evaluator.DataInstance:
		fields := make([]interface{}, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = Marshal(f)
		}
		return Data{Name: v.Name, Fields: fields}
	case evaluator.Location:
		return Location{Addr: int(v)}
	}
	return obj.Inspect()
}
