package jcrproperty

import (
	"github.com/viant/aemrules/tree"
)

// AnnotatedFields returns names of fields declared directly in class carrying annotation.
// Nested, local and anonymous classes and method bodies are not searched.
func AnnotatedFields(class *tree.Node, annotation string) map[string]bool {
	result := map[string]bool{}
	if class == nil {
		return result
	}
	for _, member := range class.Members() {
		if member.Kind != tree.KindVariable || member.Role != tree.RoleField {
			continue
		}
		if tree.IsAnnotatedWith(member, annotation) {
			result[member.Name] = true
		}
	}
	return result
}
