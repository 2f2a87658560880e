package student

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kunalv272/StudentTracker/internal/domain/shared"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:  "two plain tokens",
			input: "Maya Rao",
		},
		{
			name:  "three tokens",
			input: "Amitabh Harivansh Bachchan",
		},
		{
			name:  "hyphenated second name",
			input: "Anna Smith-Jones",
		},
		{
			name:    "single token",
			input:   "SingleName",
			wantErr: shared.ErrNoSecondName,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: shared.ErrEmptyName,
		},
		{
			name:    "digit in name",
			input:   "Maya R2o",
			wantErr: shared.ErrInvalidNameChar,
		},
		{
			name:    "punctuation in name",
			input:   "Maya R.Rao",
			wantErr: shared.ErrInvalidNameChar,
		},
		{
			name:    "invalid char beats missing second token",
			input:   "Maya#",
			wantErr: shared.ErrInvalidNameChar,
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantErr: shared.ErrNoSecondName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateRoll(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:  "alphanumeric",
			input: "20CS1001",
		},
		{
			name:  "with slash and hyphen",
			input: "20/CS-1001",
		},
		{
			name:    "empty",
			input:   "",
			wantErr: shared.ErrEmptyRoll,
		},
		{
			name:    "hash",
			input:   "20CS#1003",
			wantErr: shared.ErrInvalidRollChar,
		},
		{
			name:    "space",
			input:   "20CS 1001",
			wantErr: shared.ErrInvalidRollChar,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRoll(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBoundedCopy(t *testing.T) {
	t.Run("fits under capacity", func(t *testing.T) {
		got, err := boundedCopy(8, "abcdefg")
		require.NoError(t, err)
		assert.Equal(t, "abcdefg", got)
	})

	t.Run("fails at exact capacity", func(t *testing.T) {
		// The terminator slot makes capacity-length input too long.
		_, err := boundedCopy(8, "abcdefgh")
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrOverflow)
		assert.True(t, shared.IsCapacity(err))
	})

	t.Run("name at limit rejected", func(t *testing.T) {
		longName := strings.Repeat("a", NameMax/2) + " " + strings.Repeat("b", NameMax/2)
		s := New(LevelBTech, BranchCSE)
		err := s.SetName(longName)
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrOverflow)
	})
}
