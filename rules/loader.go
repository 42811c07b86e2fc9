package rules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
)

// DefaultDescription is used when no description resource exists for a rule
const DefaultDescription = "No description yet."

// Loader converts declared rule types into rule definitions
type Loader struct {
	descriptions DescriptionSource
	logger       *slog.Logger
}

// LoaderOption customizes a Loader
type LoaderOption func(*Loader)

// WithDescriptions sets the description source, embedded descriptions are used by default
func WithDescriptions(source DescriptionSource) LoaderOption {
	return func(l *Loader) {
		l.descriptions = source
	}
}

// WithLoaderLogger sets the diagnostic logger
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a loader
func NewLoader(options ...LoaderOption) *Loader {
	l := &Loader{}
	for _, option := range options {
		option(l)
	}
	if l.descriptions == nil {
		l.descriptions = NewEmbeddedSource()
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	return l
}

// Load creates a definition for every declared rule type and adds it to repo.
// Rule types without a declaration are skipped with a warning. A failing rule does not
// stop the others; all failures are returned joined.
func (l *Loader) Load(ctx context.Context, repo *Repository, ruleTypes ...any) ([]*Definition, error) {
	var result []*Definition
	var errs []error
	for _, ruleType := range ruleTypes {
		definition, err := l.LoadRule(ctx, ruleType)
		if err != nil {
			l.logger.Error("failed to load rule", "type", typeName(ruleType), "error", err)
			errs = append(errs, err)
			continue
		}
		if definition == nil {
			continue
		}
		if repo != nil {
			if err = repo.Add(definition); err != nil {
				errs = append(errs, err)
				continue
			}
		}
		result = append(result, definition)
	}
	return result, errors.Join(errs...)
}

// LoadRule creates a definition for one rule type, nil when the type has no declaration
func (l *Loader) LoadRule(ctx context.Context, ruleType any) (*Definition, error) {
	declarer, ok := ruleType.(Declarer)
	var declaration *Declaration
	if ok {
		declaration = declarer.Declaration()
	}
	if declaration == nil {
		l.logger.Warn("rule type should declare rule metadata", "type", typeName(ruleType))
		return nil, nil
	}
	key := strings.TrimSpace(declaration.Key)
	if key == "" {
		key = typeName(ruleType)
	}
	status, err := ParseStatus(declaration.Status)
	if err != nil {
		return nil, fmt.Errorf("rule %v: %w", key, err)
	}
	priority, err := ParsePriority(string(declaration.Priority))
	if err != nil {
		return nil, fmt.Errorf("rule %v: %w", key, err)
	}
	definition := &Definition{
		Key:         key,
		Name:        declaration.Name,
		Description: l.description(ctx, key),
		Severity:    priority,
		Template:    declaration.Cardinality == Multiple,
		Status:      status,
		Tags:        append([]string{}, declaration.Tags...),
	}
	if parameterized, ok := ruleType.(Parameterized); ok {
		for _, declared := range parameterized.Parameters() {
			param, err := loadParam(declared)
			if err != nil {
				return nil, fmt.Errorf("rule %v: %w", key, err)
			}
			if err = definition.AddParam(param); err != nil {
				return nil, err
			}
		}
	}
	return definition, nil
}

func (l *Loader) description(ctx context.Context, key string) string {
	location := DescriptionPath(key)
	description, err := l.descriptions.Lookup(ctx, location)
	if err != nil {
		l.logger.Error("cannot read resource file with rule description", "rule", key, "location", location, "error", err)
		return DefaultDescription
	}
	if strings.TrimSpace(description) == "" {
		l.logger.Warn("rule description resource was blank", "rule", key, "location", location)
		return DefaultDescription
	}
	return description
}

func loadParam(declared ParamDeclaration) (*ParamDefinition, error) {
	key := strings.TrimSpace(declared.Key)
	if key == "" {
		key = declared.Field
	}
	param := &ParamDefinition{
		Key:          key,
		Description:  declared.Description,
		DefaultValue: declared.DefaultValue,
	}
	if strings.TrimSpace(declared.Type) == "" {
		param.Type = GuessType(declared.Native)
		return param, nil
	}
	paramType, err := ParseParamType(declared.Type)
	if err != nil {
		return nil, fmt.Errorf("invalid property type [%v] of %v: %w", declared.Type, key, err)
	}
	param.Type = paramType
	return param, nil
}

func typeName(value any) string {
	t := reflect.TypeOf(value)
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
