package rules

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseParamType(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      ParamType
		expectErr   bool
	}{
		{description: "integer", input: "INTEGER", expect: Integer},
		{description: "float with spaces", input: "  FLOAT ", expect: Float},
		{description: "boolean", input: "BOOLEAN", expect: Boolean},
		{description: "string", input: "STRING", expect: String},
		{description: "text", input: "TEXT", expect: Text},
		{description: "single list", input: `SINGLE_SELECT_LIST,values="a,b,c"`, expect: SingleListOfValues("a", "b", "c")},
		{description: "multiple list", input: `SINGLE_SELECT_LIST,multiple=true,values="x, y"`, expect: MultipleListOfValues("x", "y")},
		{description: "list without values", input: "SINGLE_SELECT_LIST", expect: ParamType{Name: TypeSingleSelectList}},
		{description: "unknown", input: "BOGUS", expectErr: true},
		{description: "lower case is not recognized", input: "integer", expectErr: true},
		{description: "scalar with options", input: "INTEGER,values=1", expectErr: true},
		{description: "unknown list option", input: "SINGLE_SELECT_LIST,size=3", expectErr: true},
		{description: "unterminated quote", input: `SINGLE_SELECT_LIST,values="a,b`, expectErr: true},
		{description: "invalid multiple", input: "SINGLE_SELECT_LIST,multiple=maybe", expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := ParseParamType(tc.input)
			if tc.expectErr {
				assert.True(t, errors.Is(err, ErrInvalidParamType), err)
				return
			}
			if !assert.Nil(t, err) {
				return
			}
			assert.EqualValues(t, tc.expect, actual)
			reparsed, err := ParseParamType(actual.String())
			assert.Nil(t, err)
			assert.EqualValues(t, actual, reparsed)
		})
	}
}

func TestGuessType(t *testing.T) {
	var testCases = []struct {
		kind   reflect.Kind
		expect ParamType
	}{
		{reflect.Int, Integer},
		{reflect.Int32, Integer},
		{reflect.Uint16, Integer},
		{reflect.Float32, Float},
		{reflect.Float64, Float},
		{reflect.Bool, Boolean},
		{reflect.String, String},
		{reflect.Map, String},
		{reflect.Invalid, String},
	}
	for _, tc := range testCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.EqualValues(t, tc.expect, GuessType(tc.kind))
		})
	}
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("")
	assert.Nil(t, err)
	assert.EqualValues(t, StatusReady, status)
	status, err = ParseStatus("deprecated")
	assert.Nil(t, err)
	assert.EqualValues(t, StatusDeprecated, status)
	_, err = ParseStatus("ALPHA")
	assert.True(t, errors.Is(err, ErrInvalidStatus))
}

func TestParsePriority(t *testing.T) {
	var testCases = []struct {
		description string
		value       string
		expect      Priority
		expectErr   bool
	}{
		{description: "blank", value: "", expect: Major},
		{description: "lower case", value: " critical ", expect: Critical},
		{description: "blocker", value: "BLOCKER", expect: Blocker},
		{description: "unknown", value: "URGENT", expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := ParsePriority(tc.value)
			if tc.expectErr {
				assert.True(t, errors.Is(err, ErrInvalidPriority))
				return
			}
			assert.Nil(t, err)
			assert.EqualValues(t, tc.expect, actual)
		})
	}
}
