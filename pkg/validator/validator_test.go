package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type titled struct {
	Title string `validate:"required,min=1,max=8"`
	Lang  string `validate:"oneof=en zh"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		in      titled
		wantErr string
	}{
		{name: "valid", in: titled{Title: "Animals", Lang: "en"}},
		{name: "runes not bytes", in: titled{Title: "животные", Lang: "zh"}},
		{name: "missing title", in: titled{Lang: "en"}, wantErr: "Field: Title, Tag: required"},
		{name: "too long", in: titled{Title: strings.Repeat("a", 9), Lang: "en"}, wantErr: "Tag: max, Param: 8"},
		{name: "bad language", in: titled{Title: "x", Lang: "fr"}, wantErr: "Field: Lang, Tag: oneof"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateStruct_NotAStruct(t *testing.T) {
	assert.ErrorIs(t, ValidateStruct(42), ErrValidation)
}
