package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleClass() *Node {
	ctor := &Node{Kind: KindMethod, Name: "Foo", IsConstructor: true}
	ctor.Add(
		&Node{Kind: KindVariable, Name: "bar", Role: RoleParameter},
		&Node{Kind: KindBlock, Children: []*Node{
			{Kind: KindIdentifier, Name: "bar", Symbol: &Symbol{Name: "bar", Kind: SymbolVariable, Role: RoleParameter}},
			{Kind: KindMemberAccess, Name: "baz", Children: []*Node{{Kind: KindOther, Name: "this"}}},
		}},
	)
	class := &Node{Kind: KindClass, Name: "Foo", QualifiedName: "com.example.Foo"}
	class.Add(
		&Node{Kind: KindAnnotation, Name: "SliceResource", QualifiedName: "com.cognifide.slice.mapper.annotation.SliceResource"},
		&Node{Kind: KindVariable, Name: "bar", Role: RoleField},
		nil,
		ctor,
	)
	return class
}

func TestWalker_Walk(t *testing.T) {
	var testCases = []struct {
		description string
		handlers    func(visited *[]string) *Walker
		expect      []string
	}{
		{
			description: "default handlers visit every node in source order",
			handlers: func(visited *[]string) *Walker {
				w := NewWalker()
				for _, kind := range []Kind{KindClass, KindAnnotation, KindVariable, KindMethod, KindBlock, KindIdentifier, KindMemberAccess, KindOther} {
					w.On(kind, func(node *Node, descend func()) {
						*visited = append(*visited, node.Kind.String()+":"+node.Name)
						descend()
					})
				}
				return w
			},
			expect: []string{"class:Foo", "annotation:SliceResource", "variable:bar", "method:Foo", "variable:bar", "block:", "identifier:bar", "memberAccess:baz", "other:this"},
		},
		{
			description: "handler without descend prunes subtree",
			handlers: func(visited *[]string) *Walker {
				return NewWalker().
					On(KindMethod, func(node *Node, descend func()) {
						*visited = append(*visited, "method:"+node.Name)
					}).
					On(KindIdentifier, func(node *Node, descend func()) {
						*visited = append(*visited, "identifier:"+node.Name)
					})
			},
			expect: []string{"method:Foo"},
		},
		{
			description: "unregistered kinds are transparent",
			handlers: func(visited *[]string) *Walker {
				return NewWalker().On(KindIdentifier, func(node *Node, descend func()) {
					*visited = append(*visited, "identifier:"+node.Name)
					descend()
				})
			},
			expect: []string{"identifier:bar"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			var visited []string
			tc.handlers(&visited).Walk(sampleClass())
			assert.EqualValues(t, tc.expect, visited)
		})
	}
}

func TestInspect(t *testing.T) {
	var names []string
	Inspect(sampleClass(), func(node *Node) bool {
		if node.Kind == KindMethod {
			return false
		}
		names = append(names, node.Kind.String())
		return true
	})
	assert.EqualValues(t, []string{"class", "annotation", "variable"}, names)
}

func TestNode_Accessors(t *testing.T) {
	class := sampleClass()
	assert.Len(t, class.Annotations(), 1)
	assert.Len(t, class.Members(), 2)
	ctor := class.Members()[1]
	assert.Len(t, ctor.Parameters(), 1)
	assert.NotNil(t, ctor.Body())
	assert.Nil(t, class.Body())
	assert.False(t, class.HasModifier("public"))
}
