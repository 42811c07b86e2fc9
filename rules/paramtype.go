package rules

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

const (
	TypeString           = "STRING"
	TypeText             = "TEXT"
	TypeBoolean          = "BOOLEAN"
	TypeInteger          = "INTEGER"
	TypeFloat            = "FLOAT"
	TypeSingleSelectList = "SINGLE_SELECT_LIST"
)

// ParamType is the type of rule parameter
type ParamType struct {
	Name     string   `yaml:"name" json:"name"`
	Values   []string `yaml:"values,omitempty" json:"values,omitempty"`
	Multiple bool     `yaml:"multiple,omitempty" json:"multiple,omitempty"`
}

var (
	String  = ParamType{Name: TypeString}
	Text    = ParamType{Name: TypeText}
	Boolean = ParamType{Name: TypeBoolean}
	Integer = ParamType{Name: TypeInteger}
	Float   = ParamType{Name: TypeFloat}
)

// SingleListOfValues creates a select list type accepting one value
func SingleListOfValues(values ...string) ParamType {
	return ParamType{Name: TypeSingleSelectList, Values: values}
}

// MultipleListOfValues creates a select list type accepting many values
func MultipleListOfValues(values ...string) ParamType {
	return ParamType{Name: TypeSingleSelectList, Values: values, Multiple: true}
}

// String returns the textual form accepted by ParseParamType
func (t ParamType) String() string {
	if t.Name != TypeSingleSelectList {
		return t.Name
	}
	builder := strings.Builder{}
	builder.WriteString(t.Name)
	if t.Multiple {
		builder.WriteString(",multiple=true")
	}
	if len(t.Values) > 0 {
		builder.WriteString(",values=")
		builder.WriteString(strconv.Quote(strings.Join(t.Values, ",")))
	}
	return builder.String()
}

// ParseParamType parses INTEGER, FLOAT, BOOLEAN, STRING, TEXT or
// SINGLE_SELECT_LIST[,multiple=true][,values="a,b"]
func ParseParamType(value string) (ParamType, error) {
	value = strings.TrimSpace(value)
	name, options, _ := strings.Cut(value, ",")
	switch name = strings.TrimSpace(name); name {
	case TypeString, TypeText, TypeBoolean, TypeInteger, TypeFloat:
		if strings.TrimSpace(options) != "" {
			return ParamType{}, fmt.Errorf("%w: %q does not take options", ErrInvalidParamType, value)
		}
		return ParamType{Name: name}, nil
	case TypeSingleSelectList:
		return parseSelectList(value, options)
	}
	return ParamType{}, fmt.Errorf("%w: %q", ErrInvalidParamType, value)
}

func parseSelectList(value, options string) (ParamType, error) {
	result := ParamType{Name: TypeSingleSelectList}
	for options = strings.TrimSpace(options); options != ""; options = strings.TrimSpace(options) {
		key, rest, ok := strings.Cut(options, "=")
		if !ok {
			return ParamType{}, fmt.Errorf("%w: %q malformed option %q", ErrInvalidParamType, value, options)
		}
		var optionValue string
		rest = strings.TrimSpace(rest)
		if strings.HasPrefix(rest, `"`) {
			end := strings.Index(rest[1:], `"`)
			if end == -1 {
				return ParamType{}, fmt.Errorf("%w: %q unterminated quote", ErrInvalidParamType, value)
			}
			optionValue = rest[1 : end+1]
			rest = rest[end+2:]
		} else {
			optionValue, rest, _ = strings.Cut(rest, ",")
		}
		rest = strings.TrimPrefix(strings.TrimSpace(rest), ",")
		switch strings.TrimSpace(key) {
		case "multiple":
			multiple, err := strconv.ParseBool(strings.TrimSpace(optionValue))
			if err != nil {
				return ParamType{}, fmt.Errorf("%w: %q invalid multiple: %v", ErrInvalidParamType, value, err)
			}
			result.Multiple = multiple
		case "values":
			for _, item := range strings.Split(optionValue, ",") {
				if item = strings.TrimSpace(item); item != "" {
					result.Values = append(result.Values, item)
				}
			}
		default:
			return ParamType{}, fmt.Errorf("%w: %q unknown option %q", ErrInvalidParamType, value, key)
		}
		options = rest
	}
	return result, nil
}

// GuessType infers param type from a native kind; unmapped kinds are STRING
func GuessType(kind reflect.Kind) ParamType {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Integer
	case reflect.Float32, reflect.Float64:
		return Float
	case reflect.Bool:
		return Boolean
	}
	return String
}
