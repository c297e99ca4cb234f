package evaluator

type ObjectType string

const (
	INTEGER_OBJ       = "INTEGER"
	BOOLEAN_OBJ       = "BOOLEAN"
	STRING_OBJ        = "STRING"
	LIST_OBJ          = "LIST"
	DATA_INSTANCE_OBJ = "DATA_INSTANCE"
	CLOSURE_OBJ       = "CLOSURE"
	CONTINUATION_OBJ  = "CONTINUATION"
	LOCATION_OBJ      = "LOCATION"
)

// Object is the runtime value model. Every FUN value, including
// locations and captured continuations, flows through the evaluator
// as an Object.
type Object interface {
	Type() ObjectType
	Inspect() string
}
