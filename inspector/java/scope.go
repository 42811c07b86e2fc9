package java

import (
	"github.com/viant/aemrules/tree"
)

// scope is a lexical scope; lookups walk outwards through enclosing scopes
type scope struct {
	parent  *scope
	kind    string // class, method, block
	owner   string
	symbols map[string]*tree.Symbol
}

func newScope(parent *scope, kind, owner string) *scope {
	return &scope{parent: parent, kind: kind, owner: owner, symbols: map[string]*tree.Symbol{}}
}

// declare binds name in this scope, shadowing outer bindings
func (s *scope) declare(name string, role tree.Role) *tree.Symbol {
	symbol := &tree.Symbol{Name: name, Kind: tree.SymbolVariable, Role: role, Owner: s.owner}
	s.symbols[name] = symbol
	return symbol
}

func (s *scope) lookup(name string) *tree.Symbol {
	for current := s; current != nil; current = current.parent {
		if symbol, ok := current.symbols[name]; ok {
			return symbol
		}
	}
	return nil
}

// field looks name up in the nearest class scope only
func (s *scope) field(name string) *tree.Symbol {
	for current := s; current != nil; current = current.parent {
		if current.kind == scopeClass {
			return current.symbols[name]
		}
	}
	return nil
}

const (
	scopeClass  = "class"
	scopeMethod = "method"
	scopeBlock  = "block"
)
