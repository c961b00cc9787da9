package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponse_Message(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "error field", body: `{"error":" Invalid credentials "}`, want: "Invalid credentials"},
		{name: "errors list", body: `{"errors":["name required","","price must be positive"]}`, want: "name required, price must be positive"},
		{name: "error wins", body: `{"error":"bad","errors":["x"]}`, want: "bad"},
		{name: "empty", body: `{}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e ErrorResponse
			require.NoError(t, json.Unmarshal([]byte(tt.body), &e))
			assert.Equal(t, tt.want, e.Message())
		})
	}
}

func TestProductPatch_OmitsNilFields(t *testing.T) {
	price := 12.5
	b, err := json.Marshal(ProductPatch{Price: &price})
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":12.5}`, string(b))

	assert.True(t, ProductPatch{}.IsEmpty())
	assert.False(t, ProductPatch{Price: &price}.IsEmpty())
}
