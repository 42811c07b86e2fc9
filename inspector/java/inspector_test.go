package java_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/aemrules/inspector/java"
	"github.com/viant/aemrules/tree"
	"github.com/viant/afs"
)

const sliceModel = `package com.example.models;

import com.cognifide.slice.mapper.annotation.JcrProperty;
import com.cognifide.slice.mapper.annotation.SliceResource;
import java.util.List;

@SliceResource
public class TextModel {

    @JcrProperty
    private String text;

    @JcrProperty("title")
    private String title, subtitle;

    private final String upper;

    public TextModel(String title) {
        String local = text;
        this.upper = title + local + this.subtitle;
        for (String item : List.of("a")) {
            consume(item, Helper.NAME);
        }
        Runnable r = () -> consume(text, null);
    }

    @Override
    public String toString() {
        return text;
    }
}
`

func findAll(root *tree.Node, kind tree.Kind) []*tree.Node {
	var result []*tree.Node
	tree.Inspect(root, func(node *tree.Node) bool {
		if node.Kind == kind {
			result = append(result, node)
		}
		return true
	})
	return result
}

func identifiers(root *tree.Node) map[string][]*tree.Symbol {
	result := map[string][]*tree.Symbol{}
	for _, node := range findAll(root, tree.KindIdentifier) {
		result[node.Name] = append(result[node.Name], node.Symbol)
	}
	return result
}

func TestInspector_InspectSource_Declarations(t *testing.T) {
	unit, err := java.NewInspector(nil).InspectSource("TextModel.java", []byte(sliceModel))
	if !assert.Nil(t, err) {
		return
	}
	assert.EqualValues(t, tree.KindCompilationUnit, unit.Kind)
	assert.EqualValues(t, "com.example.models", unit.QualifiedName)

	classes := findAll(unit, tree.KindClass)
	if !assert.Len(t, classes, 1) {
		return
	}
	class := classes[0]
	assert.EqualValues(t, "TextModel", class.Name)
	assert.EqualValues(t, "com.example.models.TextModel", class.QualifiedName)
	assert.True(t, class.HasModifier("public"))
	assert.True(t, tree.IsAnnotatedWith(class, "com.cognifide.slice.mapper.annotation.SliceResource"))

	var fields []string
	for _, member := range class.Members() {
		if member.Kind == tree.KindVariable && member.Role == tree.RoleField {
			fields = append(fields, member.Name)
			if member.Name != "upper" {
				assert.True(t, tree.IsAnnotatedWith(member, "com.cognifide.slice.mapper.annotation.JcrProperty"), member.Name)
			}
		}
	}
	assert.EqualValues(t, []string{"text", "title", "subtitle", "upper"}, fields)

	var methods []*tree.Node
	for _, member := range class.Members() {
		if member.Kind == tree.KindMethod {
			methods = append(methods, member)
		}
	}
	if !assert.Len(t, methods, 2) {
		return
	}
	ctor := methods[0]
	assert.True(t, ctor.IsConstructor)
	assert.EqualValues(t, "TextModel", ctor.Name)
	if assert.Len(t, ctor.Parameters(), 1) {
		assert.EqualValues(t, "title", ctor.Parameters()[0].Name)
		assert.EqualValues(t, "String", ctor.Parameters()[0].Type)
	}
	assert.False(t, methods[1].IsConstructor)
	assert.True(t, tree.IsAnnotatedWith(methods[1], "java.lang.Override"))
}

func TestInspector_InspectSource_Symbols(t *testing.T) {
	unit, err := java.NewInspector(nil).InspectSource("TextModel.java", []byte(sliceModel))
	if !assert.Nil(t, err) {
		return
	}
	var ctor *tree.Node
	for _, method := range findAll(unit, tree.KindMethod) {
		if method.IsConstructor {
			ctor = method
		}
	}
	if !assert.NotNil(t, ctor) {
		return
	}
	symbols := identifiers(ctor.Body())

	if assert.Len(t, symbols["text"], 2) {
		for _, symbol := range symbols["text"] {
			assert.True(t, symbol.IsVariable())
			assert.EqualValues(t, tree.RoleField, symbol.Role)
			assert.EqualValues(t, "com.example.models.TextModel", symbol.Owner)
		}
	}
	if assert.Len(t, symbols["title"], 1) {
		assert.EqualValues(t, tree.RoleParameter, symbols["title"][0].Role)
		assert.EqualValues(t, "String", symbols["title"][0].Type)
	}
	assert.EqualValues(t, "String", symbols["text"][0].Type)
	if assert.Len(t, symbols["local"], 1) {
		assert.EqualValues(t, tree.RoleLocal, symbols["local"][0].Role)
	}
	if assert.Len(t, symbols["item"], 1) {
		assert.EqualValues(t, tree.RoleLocal, symbols["item"][0].Role)
	}
	if assert.Len(t, symbols["Helper"], 1) {
		assert.EqualValues(t, tree.SymbolType, symbols["Helper"][0].Kind)
	}
	assert.Len(t, symbols["consume"], 0, "method names are not identifiers")
	assert.Len(t, symbols["upper"], 0, "selected members are not identifiers")

	var members []string
	roles := map[string]tree.Role{}
	for _, access := range findAll(ctor.Body(), tree.KindMemberAccess) {
		members = append(members, access.Name)
		roles[access.Name] = access.Symbol.Role
	}
	assert.EqualValues(t, []string{"upper", "subtitle", "NAME"}, members)
	assert.EqualValues(t, tree.RoleField, roles["upper"])
	assert.EqualValues(t, tree.RoleField, roles["subtitle"])
	assert.EqualValues(t, tree.RoleNone, roles["NAME"])
}

func TestInspector_AnnotationResolution(t *testing.T) {
	var testCases = []struct {
		description string
		source      string
		expect      []string
	}{
		{
			description: "single type import",
			source:      "package a; import x.y.Marker; @Marker class A {}",
			expect:      []string{"x.y.Marker"},
		},
		{
			description: "qualified usage",
			source:      "package a; @x.y.Marker class A {}",
			expect:      []string{"x.y.Marker"},
		},
		{
			description: "same package",
			source:      "package a; @Marker class A {}",
			expect:      []string{"a.Marker"},
		},
		{
			description: "on demand import is ambiguous",
			source:      "package a; import x.y.*; @Marker class A {}",
			expect:      []string{""},
		},
		{
			description: "java.lang is implicit",
			source:      "package a; import x.y.*; @Deprecated class A {}",
			expect:      []string{"java.lang.Deprecated"},
		},
		{
			description: "nested type through imported outer",
			source:      "package a; import x.y.Outer; @Outer.Inner(value = 1) class A {}",
			expect:      []string{"x.y.Outer.Inner"},
		},
		{
			description: "static import does not name a type",
			source:      "package a; import static x.y.Marker.VALUE; @Marker class A {}",
			expect:      []string{"a.Marker"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			unit, err := java.NewInspector(nil).InspectSource("A.java", []byte(tc.source))
			if !assert.Nil(t, err) {
				return
			}
			var actual []string
			for _, annotation := range findAll(unit, tree.KindAnnotation) {
				actual = append(actual, annotation.QualifiedName)
			}
			assert.EqualValues(t, tc.expect, actual)
		})
	}
}

func TestInspector_NestedAndAnonymousClasses(t *testing.T) {
	source := `package a;
class Outer {
    int count;
    class Inner {
        int size;
        Inner() { size = count; }
    }
    Outer() {
        new Runnable() {
            int hidden;
            public void run() { hidden = count; }
        };
    }
}`
	unit, err := java.NewInspector(nil).InspectSource("Outer.java", []byte(source))
	if !assert.Nil(t, err) {
		return
	}
	var names []string
	for _, class := range findAll(unit, tree.KindClass) {
		names = append(names, class.QualifiedName)
	}
	assert.EqualValues(t, []string{"a.Outer", "a.Outer.Inner", "a.Outer$1"}, names)

	symbols := identifiers(unit)
	if assert.Len(t, symbols["count"], 2) {
		for _, symbol := range symbols["count"] {
			assert.EqualValues(t, "a.Outer", symbol.Owner)
		}
	}
	if assert.Len(t, symbols["hidden"], 1) {
		assert.EqualValues(t, "a.Outer$1", symbols["hidden"][0].Owner)
	}
}

func TestInspector_TryStatements(t *testing.T) {
	source := `package a;
class A {
    void run() {
        try (Resource r = open()) {
            r.use();
        } catch (Exception e) {
            log(e);
        } finally {
            done();
        }
    }
}`
	unit, err := java.NewInspector(nil).InspectSource("A.java", []byte(source))
	if !assert.Nil(t, err) {
		return
	}
	tries := findAll(unit, tree.KindTry)
	if !assert.Len(t, tries, 1) {
		return
	}
	var resource *tree.Node
	for _, child := range tries[0].Children {
		if child.Kind == tree.KindVariable {
			resource = child
		}
	}
	if assert.NotNil(t, resource) {
		assert.EqualValues(t, tree.RoleResource, resource.Role)
		assert.EqualValues(t, "r", resource.Name)
	}
	assert.Len(t, findAll(tries[0], tree.KindFinally), 1)
	symbols := identifiers(unit)
	if assert.Len(t, symbols["e"], 1) {
		assert.EqualValues(t, tree.RoleLocal, symbols["e"][0].Role)
	}
	if assert.Len(t, symbols["r"], 1) {
		assert.EqualValues(t, tree.RoleResource, symbols["r"][0].Role)
	}
}

func TestInspector_InspectURL(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/inspector/src/TextModel.java"
	if !assert.Nil(t, fs.Upload(ctx, URL, 0644, strings.NewReader(sliceModel))) {
		return
	}
	inspector := java.NewInspector(fs)
	unit, err := inspector.InspectURL(ctx, URL)
	if !assert.Nil(t, err) {
		return
	}
	assert.EqualValues(t, URL, unit.Name)
	_, err = inspector.InspectURL(ctx, "mem://localhost/inspector/src/Missing.java")
	assert.NotNil(t, err)
}

func TestInspector_PatternVariableScope(t *testing.T) {
	source := `package a;
class A {
    void run(Object value) {
        if (value instanceof String text) {
            use(text);
        }
        use(text);
        while (!(value instanceof Number number)) {
            use(number);
        }
    }
}`
	unit, err := java.NewInspector(nil).InspectSource("A.java", []byte(source))
	if !assert.Nil(t, err) {
		return
	}
	symbols := identifiers(unit)
	if assert.Len(t, symbols["text"], 2) {
		assert.True(t, symbols["text"][0].IsVariable())
		assert.EqualValues(t, tree.RoleLocal, symbols["text"][0].Role)
		assert.False(t, symbols["text"][1].IsVariable())
	}
	if assert.Len(t, symbols["number"], 1) {
		assert.True(t, symbols["number"][0].IsVariable())
	}
}
