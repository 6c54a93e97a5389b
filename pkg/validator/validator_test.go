package validator

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type draft struct {
	Email   string   `json:"email" form:"email" validate:"omitempty,email"`
	Age     *int     `json:"age" validate:"omitempty,min=0"`
	Date    string   `form:"visit_date" validate:"omitempty,datetime=2006-01-02"`
	Code    string   `validate:"omitempty,len=3"`
	Amount  *float64 `json:"amount,omitempty" validate:"omitempty,min=0"`
	Ignored string   `json:"-"`
}

func newValidate() *validator.Validate {
	v := validator.New()
	Register(v)
	return v
}

func TestFieldName(t *testing.T) {
	typ := reflect.TypeOf(draft{})

	tests := []struct {
		field string
		want  string
	}{
		{"Email", "email"},
		{"Date", "visit_date"},
		{"Code", "Code"},
		{"Amount", "amount"},
		{"Ignored", "Ignored"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			f, ok := typ.FieldByName(tt.field)
			require.True(t, ok)
			assert.Equal(t, tt.want, FieldName(f))
		})
	}
}

func TestTranslateValidationErrors(t *testing.T) {
	age := -1
	err := newValidate().Struct(draft{Email: "not-an-email", Age: &age, Date: "25/01/2024", Code: "ab"})
	require.Error(t, err)

	got := ByField(Translate(err))
	assert.Equal(t, "must be a valid email address", got["email"])
	assert.Equal(t, "must not be negative", got["age"])
	assert.Equal(t, "must be a date in YYYY-MM-DD format", got["visit_date"])
	assert.Equal(t, `failed "len" check`, got["Code"])
}

func TestTranslateBlankDraftIsValid(t *testing.T) {
	assert.NoError(t, newValidate().Struct(draft{}))
	assert.Nil(t, Translate(nil))
}

func TestTranslateJSONErrors(t *testing.T) {
	var d struct {
		Age int `json:"age"`
	}

	err := json.Unmarshal([]byte(`{"age":"thirty"}`), &d)
	require.Error(t, err)
	fields := Translate(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "age", fields[0].Field)
	assert.Equal(t, "must be a int", fields[0].Message)

	err = json.Unmarshal([]byte(`{"age":`), &d)
	require.Error(t, err)
	fields = Translate(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "malformed JSON body", fields[0].Message)
}
