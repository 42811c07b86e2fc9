package tree

// SymbolKind classifies what a name was resolved to
type SymbolKind int

const (
	SymbolUnresolved SymbolKind = iota
	SymbolVariable
	SymbolMethod
	SymbolType
	SymbolMember // selected member whose receiver was not resolved
)

// Symbol is a name binding resolved by the front end
type Symbol struct {
	Name  string
	Kind  SymbolKind
	Role  Role
	Owner string // qualified name of the declaring class or method
	Type  string // declared type of a variable as written, empty when unknown
}

// IsVariable returns true for fields, parameters and locals. Nil symbols are unresolved.
func (s *Symbol) IsVariable() bool {
	return s != nil && s.Kind == SymbolVariable
}

// IsResolved returns true when the binding is known
func (s *Symbol) IsResolved() bool {
	return s != nil && s.Kind != SymbolUnresolved
}
