package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	Name  string `json:"name"  validate:"required,max=5"`
	Email string `json:"email" validate:"omitempty,email"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    testRequest
		wantErr error
	}{
		{name: "valid", body: `{"name":"jane","email":"j@example.com"}`, want: testRequest{Name: "jane", Email: "j@example.com"}},
		{name: "keys match case-insensitively", body: `{"NAME":"jane"}`, want: testRequest{Name: "jane"}},
		{name: "empty body", body: "", wantErr: ErrEmptyBody},
		{name: "malformed", body: `{"name":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var got testRequest
			err := DecodeJSON(r, &got)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.want == (testRequest{}):
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestValidateRequestUsesJSONNames(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateRequest(testRequest{Name: "jane"}))

	err := ValidateRequest(testRequest{Name: "toolong", Email: "nope"})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 2)
	assert.Equal(t, "name", verrs[0].Field())
	assert.Equal(t, "max", verrs[0].Tag())
	assert.Equal(t, "email", verrs[1].Field())
}
