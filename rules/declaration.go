package rules

import (
	"fmt"
	"reflect"
	"strings"
)

// Priority is the declared severity of a rule
type Priority string

const (
	Info     Priority = "INFO"
	Minor    Priority = "MINOR"
	Major    Priority = "MAJOR"
	Critical Priority = "CRITICAL"
	Blocker  Priority = "BLOCKER"
)

// ParsePriority parses a priority name, blank means MAJOR
func ParsePriority(value string) (Priority, error) {
	switch priority := Priority(strings.ToUpper(strings.TrimSpace(value))); priority {
	case "":
		return Major, nil
	case Info, Minor, Major, Critical, Blocker:
		return priority, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPriority, value)
}

// Cardinality tells whether a rule is a concrete rule or a parametrizable template
type Cardinality int

const (
	Single Cardinality = iota
	Multiple
)

// Status is a rule lifecycle status
type Status string

const (
	StatusReady      Status = "READY"
	StatusBeta       Status = "BETA"
	StatusDeprecated Status = "DEPRECATED"
	StatusRemoved    Status = "REMOVED"
)

// ParseStatus parses a lifecycle status, blank means READY
func ParseStatus(value string) (Status, error) {
	switch status := Status(strings.ToUpper(strings.TrimSpace(value))); status {
	case "":
		return StatusReady, nil
	case StatusReady, StatusBeta, StatusDeprecated, StatusRemoved:
		return status, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, value)
}

// Declaration is the metadata a rule type declares about itself
type Declaration struct {
	Key         string
	Name        string
	Priority    Priority
	Cardinality Cardinality
	Status      string
	Tags        []string
}

// ParamDeclaration declares one rule parameter
type ParamDeclaration struct {
	Key          string // defaults to Field when blank
	Field        string
	Description  string
	DefaultValue string
	Type         string       // explicit param type, see ParseParamType
	Native       reflect.Kind // used to infer the type when Type is blank
}

// Declarer is implemented by rule types carrying a declaration
type Declarer interface {
	Declaration() *Declaration
}

// Parameterized is implemented by rule types with parameters.
// Parameters of an embedded base type are carried by calling its Parameters.
type Parameterized interface {
	Parameters() []ParamDeclaration
}
