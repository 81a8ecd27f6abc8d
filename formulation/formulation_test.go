package formulation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParsesTermsInOrder(t *testing.T) {
	f, err := New("1 + hpwt + air + mpd + space")
	require.NoError(t, err)

	assert.Equal(t, []Term{
		{Name: "1", Intercept: true},
		{Name: "hpwt"},
		{Name: "air"},
		{Name: "mpd"},
		{Name: "space"},
	}, f.Terms())
	assert.Equal(t, 5, f.NumTerms())
	assert.Equal(t, []string{"1", "hpwt", "air", "mpd", "space"}, f.ColumnNames())
}

func TestNewCanonicalString(t *testing.T) {
	f, err := New("  1+hpwt +  air")
	require.NoError(t, err)

	assert.Equal(t, "1 + hpwt + air", f.String())
}

func TestNewInterceptAnywhere(t *testing.T) {
	// "1" denotes the intercept regardless of position; order is preserved.
	f, err := New("hpwt + 1 + air")
	require.NoError(t, err)

	terms := f.Terms()
	require.Len(t, terms, 3)
	assert.False(t, terms[0].Intercept)
	assert.True(t, terms[1].Intercept)
	assert.Equal(t, "1", terms[1].Name)
	assert.False(t, terms[2].Intercept)
}

func TestNewSingleTerm(t *testing.T) {
	f, err := New("hpwt")
	require.NoError(t, err)
	assert.Equal(t, []string{"hpwt"}, f.ColumnNames())

	f, err = New("1")
	require.NoError(t, err)
	require.Equal(t, 1, f.NumTerms())
	assert.True(t, f.Terms()[0].Intercept)
}

func TestNewParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		formula string
	}{
		{"empty string", ""},
		{"blank string", "   "},
		{"empty term between plusses", "1 + + hpwt"},
		{"trailing plus", "hpwt +"},
		{"leading plus", "+ hpwt"},
		{"numeric literal", "1 + 2"},
		{"leading digit identifier", "1 + 2air"},
		{"embedded space", "1 + hp wt"},
		{"punctuation", "1 + hp-wt"},
		{"duplicate column", "hpwt + air + hpwt"},
		{"duplicate intercept", "1 + hpwt + 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.formula)
			require.Error(t, err)
			assert.Nil(t, f)

			var perr ParseError
			require.True(t, errors.As(err, &perr), "error should be a ParseError, got %T", err)
			assert.Equal(t, tt.formula, perr.Formula)
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := New("1 + hp-wt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"hp-wt"`)
	assert.Contains(t, err.Error(), `"1 + hp-wt"`)
}

func TestTermsReturnsCopy(t *testing.T) {
	f, err := New("1 + hpwt")
	require.NoError(t, err)

	terms := f.Terms()
	terms[0] = Term{Name: "mutated"}

	assert.Equal(t, "1", f.Terms()[0].Name)
}

func TestValidIdentifier(t *testing.T) {
	valid := []string{"a", "A", "_", "_x", "hpwt", "mpd2", "space_ft3", "X1"}
	invalid := []string{"", "2x", "-x", "a b", "a.b", "π", "a+"}

	for _, s := range valid {
		assert.True(t, validIdentifier(s), "%q should be valid", s)
	}
	for _, s := range invalid {
		assert.False(t, validIdentifier(s), "%q should be invalid", s)
	}
}
