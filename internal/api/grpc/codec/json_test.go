package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

type message struct {
	ID    string  `json:"id"`
	Limit int     `json:"limit,omitempty"`
	Name  *string `json:"name,omitempty"`
}

func TestJSON(t *testing.T) {
	t.Parallel()

	c := JSON{}
	name := "Groceries"

	data, err := c.Marshal(&message{ID: "1", Name: &name})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","name":"Groceries"}`, string(data))

	var got message
	require.NoError(t, c.Unmarshal(data, &got))
	assert.Equal(t, "Groceries", *got.Name)

	var empty message
	require.NoError(t, c.Unmarshal(nil, &empty))
	assert.Equal(t, message{}, empty)

	assert.Error(t, c.Unmarshal([]byte("{"), &got))
}

func TestRegistered(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, encoding.GetCodec(Name))
}
