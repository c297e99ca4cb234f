package evaluator

// DataInstance is an applied data constructor, e.g. Pair(1, 2) or Nil.
// The language is untyped: the arity is whatever arguments were
// supplied and no declared arity exists to check against.
type DataInstance struct {
	Name   string
	Fields []Object
}

func (d *DataInstance) Type() ObjectType { return DATA_INSTANCE_OBJ }
func (d *DataInstance) Inspect() string {
	if len(d.Fields) == 0 {
		return d.Name
	}
	out := d.Name + "("
	for i, field := range d.Fields {
		if i > 0 {
			out += ", "
		}
		out += field.Inspect()
	}
	out += ")"
	return out
}
