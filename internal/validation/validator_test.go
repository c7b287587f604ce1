package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckArity(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []string
		wantErr bool
		got     int
	}{
		{name: "six tokens", tokens: []string{"1", "2", "3", "4", "5", "6\n"}},
		{name: "five tokens", tokens: []string{"1", "2", "3", "4", "5\n"}, wantErr: true, got: 5},
		{name: "seven tokens", tokens: []string{"1", "2", "3", "4", "5", "6", "7"}, wantErr: true, got: 7},
		{name: "blank line", tokens: []string{"\n"}, wantErr: true, got: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckArity(tt.tokens, 3, strings.Join(tt.tokens, ", "))
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			var recErr *RecordError
			require.True(t, errors.As(err, &recErr))
			assert.Equal(t, 3, recErr.LineNumber)
			assert.Equal(t, tt.got, recErr.Got)
			assert.Equal(t, 6, recErr.Want)
			assert.Contains(t, err.Error(), "line 3")
		})
	}
}

func TestRecordErrorStripsTerminator(t *testing.T) {
	err := CheckArity([]string{"1", "2"}, 1, "1, 2\r\n")

	var recErr *RecordError
	require.True(t, errors.As(err, &recErr))
	assert.Equal(t, "1, 2", recErr.Line)
}

func TestValidateFileCollectsAllErrors(t *testing.T) {
	input := "1, 2, 3, 4, 5, 6\n" +
		"1, 2, 3, 4, 5\n" +
		"1, 2, 3, 4, 5, 6\n" +
		"\n" +
		"1, 2, 3, 4, 5, 6"

	result, err := ValidateFile(strings.NewReader(input))
	require.NoError(t, err)

	assert.False(t, result.IsValid)
	assert.Equal(t, 5, result.LineCount)
	assert.Equal(t, 2, result.ErrorCount)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 2, result.Errors[0].LineNumber)
	assert.Equal(t, 4, result.Errors[1].LineNumber)
}

func TestValidateFileEmptyInput(t *testing.T) {
	result, err := ValidateFile(strings.NewReader(""))
	require.NoError(t, err)

	assert.True(t, result.IsValid)
	assert.Zero(t, result.LineCount)
	assert.Empty(t, result.Errors)
}

func TestValidateFileDoesNotCheckNumbers(t *testing.T) {
	result, err := ValidateFile(strings.NewReader("a, b, c, d, e, f\n"))
	require.NoError(t, err)

	assert.True(t, result.IsValid)
	assert.Equal(t, 1, result.LineCount)
}

func TestValidateFileAcceptsCROnlyLineEndings(t *testing.T) {
	result, err := ValidateFile(strings.NewReader("1, 2, 3, 4, 5, 6\r7, 8, 9, 10, 11, 12\r"))
	require.NoError(t, err)

	assert.True(t, result.IsValid)
	assert.Equal(t, 2, result.LineCount)
}
