package java

import (
	"strings"
	"unicode"

	sitter "github.com/smacker/go-tree-sitter"
)

// javaLang lists implicitly imported java.lang types commonly used as annotations or receivers
var javaLang = map[string]bool{
	"Override":            true,
	"Deprecated":          true,
	"SuppressWarnings":    true,
	"FunctionalInterface": true,
	"SafeVarargs":         true,
	"String":              true,
	"Object":              true,
	"Integer":             true,
	"Long":                true,
	"Boolean":             true,
	"Math":                true,
	"System":              true,
	"Thread":              true,
	"Exception":           true,
	"RuntimeException":    true,
}

// importTable resolves simple type names of one compilation unit to qualified names
type importTable struct {
	pkg      string
	single   map[string]string
	onDemand []string
}

func newImportTable() *importTable {
	return &importTable{single: map[string]string{}}
}

// parsePackageDeclaration extracts the package name
func parsePackageDeclaration(node *sitter.Node, source []byte) string {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "identifier", "scoped_identifier":
			return child.Content(source)
		}
	}
	return ""
}

// addImport registers a single-type or on-demand import; static imports do not name types
func (t *importTable) addImport(node *sitter.Node, source []byte) {
	var name string
	var isStatic, isOnDemand bool
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "static":
			isStatic = true
		case "asterisk":
			isOnDemand = true
		case "identifier", "scoped_identifier":
			name = child.Content(source)
		}
	}
	if name == "" || isStatic {
		return
	}
	if isOnDemand {
		t.onDemand = append(t.onDemand, name)
		return
	}
	t.single[extractSimpleTypeName(name)] = name
}

// resolve returns the qualified name of a type reference or empty string when ambiguous
func (t *importTable) resolve(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if head, rest, ok := strings.Cut(name, "."); ok {
		if qualified, ok := t.single[head]; ok {
			return qualified + "." + rest
		}
		return name
	}
	if qualified, ok := t.single[name]; ok {
		return qualified
	}
	if javaLang[name] {
		return "java.lang." + name
	}
	if len(t.onDemand) > 0 {
		return ""
	}
	return t.qualify(name)
}

// qualify prefixes name with the package of the compilation unit
func (t *importTable) qualify(name string) string {
	if t.pkg == "" {
		return name
	}
	return t.pkg + "." + name
}

// isType returns true if name looks like a type reference rather than a variable
func (t *importTable) isType(name string) bool {
	if _, ok := t.single[name]; ok {
		return true
	}
	if javaLang[name] {
		return true
	}
	for _, r := range name {
		return unicode.IsUpper(r)
	}
	return false
}

// extractSimpleTypeName extracts the simple name from a possibly qualified name
// e.g., "java.util.List" -> "List"
func extractSimpleTypeName(qualifiedName string) string {
	lastDotIndex := strings.LastIndex(qualifiedName, ".")
	if lastDotIndex != -1 {
		return qualifiedName[lastDotIndex+1:]
	}
	return qualifiedName
}
