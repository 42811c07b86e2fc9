// Package catalog lists the built-in AEM rules
package catalog

import (
	"context"

	"github.com/viant/aemrules/check"
	"github.com/viant/aemrules/check/jcrproperty"
	"github.com/viant/aemrules/check/resolver"
	"github.com/viant/aemrules/rules"
)

const (
	RepositoryKey  = "aem-rules"
	RepositoryName = "AEM Rules"
	Language       = "java"
)

// Factories returns factories of all built-in checks
func Factories() []check.Factory {
	return []check.Factory{
		jcrproperty.Factory,
		resolver.Factory,
	}
}

// Registry returns a registry of all built-in checks
func Registry() *check.Registry {
	registry, err := check.NewRegistry(Factories()...)
	if err != nil {
		panic(err) // built-in keys are unique
	}
	return registry
}

// Repository loads definitions of all built-in checks into a new repository
func Repository(ctx context.Context, loader *rules.Loader) (*rules.Repository, error) {
	if loader == nil {
		loader = rules.NewLoader()
	}
	repo := rules.NewRepository(RepositoryKey, RepositoryName, Language)
	var ruleTypes []any
	for _, factory := range Factories() {
		ruleTypes = append(ruleTypes, factory())
	}
	_, err := loader.Load(ctx, repo, ruleTypes...)
	return repo, err
}
