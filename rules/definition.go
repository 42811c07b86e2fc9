package rules

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrInvalidParamType = errors.New("invalid param type")
	ErrInvalidStatus    = errors.New("invalid rule status")
	ErrInvalidPriority  = errors.New("invalid rule priority")
	ErrDuplicateRule    = errors.New("duplicate rule key")
	ErrDuplicateParam   = errors.New("duplicate param key")
)

// Definition describes one rule for registration with a repository
type Definition struct {
	Key         string             `yaml:"key" json:"key"`
	Name        string             `yaml:"name" json:"name"`
	Description string             `yaml:"description" json:"description"`
	Severity    Priority           `yaml:"severity" json:"severity"`
	Template    bool               `yaml:"template" json:"template"`
	Status      Status             `yaml:"status" json:"status"`
	Tags        []string           `yaml:"tags,omitempty" json:"tags,omitempty"`
	Params      []*ParamDefinition `yaml:"params,omitempty" json:"params,omitempty"`
}

// ParamDefinition describes one rule parameter
type ParamDefinition struct {
	Key          string    `yaml:"key" json:"key"`
	Description  string    `yaml:"description,omitempty" json:"description,omitempty"`
	DefaultValue string    `yaml:"defaultValue,omitempty" json:"defaultValue,omitempty"`
	Type         ParamType `yaml:"type" json:"type"`
}

// Param returns a param by key
func (d *Definition) Param(key string) *ParamDefinition {
	for _, param := range d.Params {
		if param.Key == key {
			return param
		}
	}
	return nil
}

// AddParam appends a param, keys are unique within a rule
func (d *Definition) AddParam(param *ParamDefinition) error {
	if d.Param(param.Key) != nil {
		return fmt.Errorf("%w: %v in rule %v", ErrDuplicateParam, param.Key, d.Key)
	}
	d.Params = append(d.Params, param)
	return nil
}

// Repository collects rule definitions; safe for concurrent use
type Repository struct {
	Key      string `yaml:"key" json:"key"`
	Name     string `yaml:"name" json:"name"`
	Language string `yaml:"language" json:"language"`
	mux      sync.RWMutex
	rules    []*Definition
	index    map[string]int
}

// NewRepository creates an empty repository
func NewRepository(key, name, language string) *Repository {
	return &Repository{Key: key, Name: name, Language: language, index: map[string]int{}}
}

// Add registers a definition, keys are unique within a repository
func (r *Repository) Add(definition *Definition) error {
	r.mux.Lock()
	defer r.mux.Unlock()
	if _, ok := r.index[definition.Key]; ok {
		return fmt.Errorf("%w: %v in repository %v", ErrDuplicateRule, definition.Key, r.Key)
	}
	r.rules = append(r.rules, definition)
	r.index[definition.Key] = len(r.rules) - 1
	return nil
}

// Rule returns a definition by key
func (r *Repository) Rule(key string) *Definition {
	r.mux.RLock()
	defer r.mux.RUnlock()
	if idx, ok := r.index[key]; ok {
		return r.rules[idx]
	}
	return nil
}

// Rules returns definitions in registration order
func (r *Repository) Rules() []*Definition {
	r.mux.RLock()
	defer r.mux.RUnlock()
	result := make([]*Definition, len(r.rules))
	copy(result, r.rules)
	return result
}
