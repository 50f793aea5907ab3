package binder

import (
	"reflect"
	"testing"

	ut "github.com/go-playground/universal-translator"
	"github.com/stretchr/testify/assert"
)

type mockFieldError struct {
	tag   string
	field string
	param string
	kind  reflect.Kind
}

func (e *mockFieldError) Error() string           { return "Mock Field Error" }
func (e *mockFieldError) Tag() string             { return e.tag }
func (e *mockFieldError) ActualTag() string       { return e.tag }
func (e *mockFieldError) Namespace() string       { return "" }
func (e *mockFieldError) StructNamespace() string { return "" }
func (e *mockFieldError) Field() string           { return e.field }
func (e *mockFieldError) StructField() string     { return "" }
func (e *mockFieldError) Value() interface{}      { return "" }
func (e *mockFieldError) Param() string           { return e.param }
func (e *mockFieldError) Kind() reflect.Kind {
	if e.kind == 0 {
		return reflect.String
	}
	return e.kind
}
func (e *mockFieldError) Type() reflect.Type               { return reflect.TypeOf("") }
func (e *mockFieldError) Translate(_ ut.Translator) string { return "" }

func TestFormatValidationError(t *testing.T) {
	cases := []struct {
		tag   string
		field string
		param string
		kind  reflect.Kind
		msg   string
	}{
		{email, "email", "", 0, `"email" is not a valid email`},
		{gt, "projectId", "0", reflect.Int, `"projectId" must be greater than 0`},
		{gte, "offset", "0", reflect.Int, `"offset" must be greater than or equal to 0`},
		// String min/max
		{mx, "userName", "50", reflect.String, `"userName" length must be less than or equal to 50 characters`},
		{mx, "userName", "1", reflect.String, `"userName" length must be less than or equal to 1 character`},
		{mn, "userName", "3", reflect.String, `"userName" length must be greater than or equal to 3 characters`},
		{mn, "password", "8", reflect.String, `"password" length must be greater than or equal to 8 characters`},
		// Numeric min/max
		{mx, "limit", "100", reflect.Int, `"limit" must be less than or equal to 100`},
		{mn, "limit", "1", reflect.Int, `"limit" must be greater than or equal to 1`},
		// Other
		{required, "name", "", 0, `"name" is required`},
		{"url", "userStoreUrl", "", 0, "NOT IMPLEMENTED YET"},
	}

	for _, tt := range cases {
		err := mockFieldError{tag: tt.tag, field: tt.field, param: tt.param, kind: tt.kind}
		msg := formatValidationError(&err)
		assert.Equal(t, tt.msg, msg)
	}
}
