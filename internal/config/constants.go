package config

// Version reported by the CLI driver.
const Version = "0.3.0"

// ProgramFileExtensions are the recognized canonical AST document
// extensions.
var ProgramFileExtensions = []string{".fun.yml", ".fun.yaml", ".yml", ".yaml", ".json"}

// DefaultMaxSteps bounds machine steps per run in the CLI driver.
// Zero disables the bound; programs may legitimately diverge.
const DefaultMaxSteps = 0

// InfixOperators are the built-in binary operators of the canonical
// AST.
var InfixOperators = []string{
	"+", "-", "*", "/", "%",
	"<", "<=", ">", ">=",
	"==", "!=",
	"&&", "||",
	"^",
}

// PrefixOperators are the built-in unary operators.
var PrefixOperators = []string{"-", "!"}

func IsInfixOperator(op string) bool {
	for _, known := range InfixOperators {
		if op == known {
			return true
		}
	}
	return false
}

func IsPrefixOperator(op string) bool {
	for _, known := range PrefixOperators {
		if op == known {
			return true
		}
	}
	return false
}
