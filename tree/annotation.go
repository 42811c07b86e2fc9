package tree

// IsAnnotatedWith returns true if any annotation on declaration resolves exactly to qualifiedName.
// Unresolved annotations never match; simple names are not compared.
func IsAnnotatedWith(declaration *Node, qualifiedName string) bool {
	if declaration == nil || qualifiedName == "" {
		return false
	}
	for _, annotation := range declaration.Annotations() {
		if annotation.QualifiedName != "" && annotation.QualifiedName == qualifiedName {
			return true
		}
	}
	return false
}

// AnnotationTable maps a role used by a check (e.g. "resource", "property") to a qualified annotation name
type AnnotationTable map[string]string

// Matches returns true if declaration carries the annotation configured for role
func (t AnnotationTable) Matches(declaration *Node, role string) bool {
	name, ok := t[role]
	if !ok {
		return false
	}
	return IsAnnotatedWith(declaration, name)
}
