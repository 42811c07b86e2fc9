package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/aemrules/catalog"
	"github.com/viant/aemrules/rules"
)

func TestRegistry(t *testing.T) {
	registry := catalog.Registry()
	assert.EqualValues(t, []string{"AEM-1", "AEM-12"}, registry.Keys())
	_, ok := registry.Factory("aem-12")
	assert.True(t, ok)
}

func TestRepository(t *testing.T) {
	repo, err := catalog.Repository(context.Background(), nil)
	if !assert.Nil(t, err) {
		return
	}
	assert.EqualValues(t, "aem-rules", repo.Key)
	assert.EqualValues(t, "java", repo.Language)
	assert.Len(t, repo.Rules(), 2)
	for _, key := range []string{"AEM-12", "AEM-1"} {
		definition := repo.Rule(key)
		if assert.NotNil(t, definition, key) {
			assert.NotEqual(t, rules.DefaultDescription, definition.Description, key)
		}
	}
}
