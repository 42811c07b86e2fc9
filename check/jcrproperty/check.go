// Package jcrproperty reports fields annotated with @JcrProperty read inside constructors of
// @SliceResource models. Slice injects those fields after construction, so they are still null there.
package jcrproperty

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/aemrules/check"
	"github.com/viant/aemrules/rules"
	"github.com/viant/aemrules/tree"
)

const (
	// Key is the rule key
	Key = "AEM-12"
	// Message is reported for every usage
	Message = "Fields annotated by @JcrProperty shouldn't be accessed from constructor."

	DefaultResourceAnnotation = "com.cognifide.slice.mapper.annotation.SliceResource"
	DefaultPropertyAnnotation = "com.cognifide.slice.mapper.annotation.JcrProperty"

	ResourceAnnotationParam = "resourceAnnotation"
	PropertyAnnotationParam = "propertyAnnotation"
)

// Check detects constructor usages of injected properties
type Check struct {
	Annotations tree.AnnotationTable
}

// New creates a check with default annotations
func New() *Check {
	return &Check{Annotations: tree.AnnotationTable{
		ResourceAnnotationParam: DefaultResourceAnnotation,
		PropertyAnnotationParam: DefaultPropertyAnnotation,
	}}
}

// Factory creates a check for the registry
func Factory() check.Check {
	return New()
}

func (c *Check) Key() string {
	return Key
}

func (c *Check) Declaration() *rules.Declaration {
	return &rules.Declaration{
		Key:      Key,
		Name:     "Fields annotated by @JcrProperty shouldn't be accessed from constructor",
		Priority: rules.Major,
		Tags:     []string{"aem", "slice"},
	}
}

func (c *Check) Parameters() []rules.ParamDeclaration {
	return []rules.ParamDeclaration{
		{
			Key:          ResourceAnnotationParam,
			Field:        "ResourceAnnotation",
			Description:  "Qualified name of the annotation marking mapped models",
			DefaultValue: DefaultResourceAnnotation,
			Native:       reflect.String,
		},
		{
			Key:          PropertyAnnotationParam,
			Field:        "PropertyAnnotation",
			Description:  "Qualified name of the annotation marking injected fields",
			DefaultValue: DefaultPropertyAnnotation,
			Native:       reflect.String,
		},
	}
}

// Configure overrides annotation names; blank values keep defaults
func (c *Check) Configure(params map[string]string) error {
	for key, value := range params {
		switch key {
		case ResourceAnnotationParam, PropertyAnnotationParam:
			if value = strings.TrimSpace(value); value != "" {
				c.Annotations[key] = value
			}
		default:
			return fmt.Errorf("unknown parameter %q of rule %v", key, Key)
		}
	}
	return nil
}

// Scan visits every class; constructors of annotated classes are checked against that class's fields
func (c *Check) Scan(ctx *check.Context, file *tree.Node) {
	walker := tree.NewWalker().On(tree.KindClass, func(class *tree.Node, descend func()) {
		if c.Annotations.Matches(class, ResourceAnnotationParam) {
			c.scanClass(ctx, class)
		}
		descend()
	})
	walker.Walk(file)
}

func (c *Check) scanClass(ctx *check.Context, class *tree.Node) {
	fields := AnnotatedFields(class, c.Annotations[PropertyAnnotationParam])
	if len(fields) == 0 {
		return
	}
	for _, member := range class.Members() {
		if member.Kind != tree.KindMethod || !member.IsConstructor {
			continue
		}
		if body := member.Body(); body != nil {
			newDetector(ctx, c, fields, member).detect(body)
		}
	}
}
