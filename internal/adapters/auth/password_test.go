package auth

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_GenerateSalt(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	hexRe := regexp.MustCompile(`^[0-9a-f]{64}$`)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		salt, err := h.GenerateSalt()
		require.NoError(t, err)
		assert.Regexp(t, hexRe, salt)
		assert.False(t, seen[salt], "salt repeated")
		seen[salt] = true
	}
}

func TestBcryptHasher_Compare(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	salt, err := h.GenerateSalt()
	require.NoError(t, err)
	otherSalt, err := h.GenerateSalt()
	require.NoError(t, err)
	long := strings.Repeat("x", 100)

	tests := []struct {
		name     string
		stored   string
		salt     string
		password string
		wantErr  bool
	}{
		{name: "matching", stored: "correct horse", salt: salt, password: "correct horse"},
		{name: "wrong password", stored: "correct horse", salt: salt, password: "battery staple", wantErr: true},
		{name: "wrong salt", stored: "correct horse", salt: otherSalt, password: "correct horse", wantErr: true},
		{name: "long password differs after 72 bytes", stored: long, salt: salt, password: long + "y", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := h.Hash(salt, tt.stored)
			require.NoError(t, err)
			require.NotEmpty(t, hash)

			err = h.Compare(hash, tt.salt, tt.password)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
