package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAnnotatedWith(t *testing.T) {
	var testCases = []struct {
		description   string
		annotations   []*Node
		qualifiedName string
		expect        bool
	}{
		{
			description:   "exact qualified match",
			annotations:   []*Node{{Kind: KindAnnotation, Name: "JcrProperty", QualifiedName: "com.cognifide.slice.mapper.annotation.JcrProperty"}},
			qualifiedName: "com.cognifide.slice.mapper.annotation.JcrProperty",
			expect:        true,
		},
		{
			description:   "same simple name from another framework",
			annotations:   []*Node{{Kind: KindAnnotation, Name: "JcrProperty", QualifiedName: "org.other.JcrProperty"}},
			qualifiedName: "com.cognifide.slice.mapper.annotation.JcrProperty",
			expect:        false,
		},
		{
			description:   "unresolved annotation never matches",
			annotations:   []*Node{{Kind: KindAnnotation, Name: "JcrProperty"}},
			qualifiedName: "com.cognifide.slice.mapper.annotation.JcrProperty",
			expect:        false,
		},
		{
			description: "any of several annotations",
			annotations: []*Node{
				{Kind: KindAnnotation, Name: "Deprecated", QualifiedName: "java.lang.Deprecated"},
				{Kind: KindAnnotation, Name: "JcrProperty", QualifiedName: "com.cognifide.slice.mapper.annotation.JcrProperty"},
			},
			qualifiedName: "com.cognifide.slice.mapper.annotation.JcrProperty",
			expect:        true,
		},
		{
			description:   "no annotations",
			qualifiedName: "java.lang.Deprecated",
			expect:        false,
		},
		{
			description:   "prefix is not a match",
			annotations:   []*Node{{Kind: KindAnnotation, QualifiedName: "com.cognifide.slice.mapper.annotation.JcrPropertyX"}},
			qualifiedName: "com.cognifide.slice.mapper.annotation.JcrProperty",
			expect:        false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			declaration := &Node{Kind: KindVariable, Name: "field", Children: tc.annotations}
			assert.EqualValues(t, tc.expect, IsAnnotatedWith(declaration, tc.qualifiedName))
		})
	}
}

func TestAnnotationTable_Matches(t *testing.T) {
	table := AnnotationTable{"resource": "com.cognifide.slice.mapper.annotation.SliceResource"}
	class := sampleClass()
	assert.True(t, table.Matches(class, "resource"))
	assert.False(t, table.Matches(class, "property"))
	assert.False(t, IsAnnotatedWith(nil, "x"))
}
