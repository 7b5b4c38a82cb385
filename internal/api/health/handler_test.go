package health

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_healthCheck(t *testing.T) {
	handler := NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))

	output, err := handler.healthCheck(context.Background(), &Input{})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "OK", output.Body.Status)
}

func TestHealthRoute(t *testing.T) {
	_, api := humatest.New(t)
	NewHandler(nil).SetupRoutes(api)

	resp := api.Get(Path)

	require.Equal(t, http.StatusOK, resp.Code)
	var body Response
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "OK", body.Status)
}
