package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/listkeeper-server/internal/model"
)

func TestBcrypt_HashAndCompare(t *testing.T) {
	t.Parallel()

	h := NewBcrypt(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	require.NoError(t, h.Compare(hash, "s3cret"))
	assert.ErrorIs(t, h.Compare(hash, "wrong"), model.ErrPasswordMismatch)
}

func TestBcrypt_CompareMalformedHash(t *testing.T) {
	t.Parallel()

	err := NewBcrypt(bcrypt.MinCost).Compare("not-a-hash", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrPasswordMismatch)
}

func TestNewBcrypt_CostOutOfRange(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(99).cost)
	assert.Equal(t, 12, NewBcrypt(12).cost)
}

func TestBcrypt_HashTooLong(t *testing.T) {
	t.Parallel()

	h := NewBcrypt(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("é", 72))
	assert.ErrorIs(t, err, model.ErrPasswordTooLong)

	_, err = h.Hash(strings.Repeat("a", 72))
	assert.NoError(t, err)
}
