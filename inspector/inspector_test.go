package inspector_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/aemrules/inspector"
	"github.com/viant/aemrules/tree"
	"github.com/viant/afs"
)

func TestFactory_GetInspector(t *testing.T) {
	var testCases = []struct {
		description string
		filename    string
		expectErr   bool
	}{
		{description: "java file", filename: "Test.java"},
		{description: "upper case extension", filename: "src/Test.JAVA"},
		{description: "url", filename: "mem://localhost/src/Test.java"},
		{description: "go file", filename: "test.go", expectErr: true},
		{description: "no extension", filename: "Makefile", expectErr: true},
	}
	factory := inspector.NewFactory(nil)
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := factory.GetInspector(tc.filename)
			assert.EqualValues(t, !tc.expectErr, factory.Supports(tc.filename))
			if tc.expectErr {
				assert.True(t, errors.Is(err, inspector.ErrUnsupported))
				assert.Nil(t, actual)
				return
			}
			assert.Nil(t, err)
			assert.NotNil(t, actual)
		})
	}
}

func TestFactory_InspectURL(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/factory/src/A.java"
	if !assert.Nil(t, fs.Upload(ctx, URL, 0644, strings.NewReader("package a; class A { int x; }"))) {
		return
	}
	factory := inspector.NewFactory(fs)
	unit, err := factory.InspectURL(ctx, URL)
	if !assert.Nil(t, err) {
		return
	}
	assert.EqualValues(t, tree.KindCompilationUnit, unit.Kind)
	assert.EqualValues(t, "a", unit.QualifiedName)

	_, err = factory.InspectURL(ctx, "mem://localhost/factory/src/a.txt")
	assert.True(t, errors.Is(err, inspector.ErrUnsupported))

	_, err = factory.InspectSource("A.kt", []byte("class A"))
	assert.True(t, errors.Is(err, inspector.ErrUnsupported))
}
