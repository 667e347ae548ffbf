package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want int
	}{
		{KindBadRequest, http.StatusBadRequest},
		{KindPayloadTooLarge, http.StatusRequestEntityTooLarge},
		{KindNotFound, http.StatusNotFound},
		{KindInternal, http.StatusInternalServerError},
		{ErrorKind("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, (&APIError{Kind: tt.kind}).HTTPStatus())
		})
	}
}

func TestAPIError_Envelope(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		apiErr := NewBadRequestError("No audio file uploaded")
		apiErr.RequestID = "req-1"

		body, err := json.Marshal(apiErr)
		require.NoError(t, err)
		assert.JSONEq(t, `{"error":"No audio file uploaded"}`, string(body))
	})

	t.Run("with details", func(t *testing.T) {
		apiErr := WrapError(errors.New("Incorrect API key provided"), KindInternal, "Failed to process meeting audio")

		body, err := json.Marshal(apiErr)
		require.NoError(t, err)
		assert.JSONEq(t, `{"error":"Failed to process meeting audio","details":"Incorrect API key provided"}`, string(body))
		assert.Equal(t, "Failed to process meeting audio: Incorrect API key provided", apiErr.Error())
	})
}

func TestWrapError_Nil(t *testing.T) {
	assert.Nil(t, WrapError(nil, KindInternal, "ignored"))
}
