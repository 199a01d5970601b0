package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "plain ten digits",
			input: "0812345678",
			want:  "0812345678",
		},
		{
			name:  "hyphenated 3-3-4",
			input: "081-234-5678",
			want:  "0812345678",
		},
		{
			name:  "surrounding whitespace",
			input: "  0812345678  ",
			want:  "0812345678",
		},
		{
			name:    "hyphens in wrong positions",
			input:   "08-1234-5678",
			wantErr: true,
		},
		{
			name:    "too short",
			input:   "081234567",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   "08123456789",
			wantErr: true,
		},
		{
			name:    "does not start with zero",
			input:   "8812345678",
			wantErr: true,
		},
		{
			name:    "contains letters",
			input:   "081234567a",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPhone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	assert.True(t, Validate("0812345678"))
	assert.True(t, Validate("081-234-5678"))
	assert.False(t, Validate("081-2345-678"))
	assert.False(t, Validate("12345"))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "081-234-5678", Format("0812345678"))
	// Ненормализованный вход возвращается как есть
	assert.Equal(t, "12345", Format("12345"))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("0812345678", "081-234-5678"))
	assert.True(t, Equal("081-234-5678", "081-234-5678"))
	assert.False(t, Equal("0812345678", "0812345679"))
	assert.False(t, Equal("invalid", "0812345678"))
	assert.False(t, Equal("invalid", "invalid"))
}
