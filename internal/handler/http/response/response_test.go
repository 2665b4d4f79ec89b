package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		totalItems int64
		totalPages int
	}{
		{name: "exact multiple", limit: 20, totalItems: 40, totalPages: 2},
		{name: "partial last page", limit: 20, totalItems: 41, totalPages: 3},
		{name: "empty result", limit: 20, totalItems: 0, totalPages: 0},
		{name: "single item", limit: 20, totalItems: 1, totalPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(1, tt.limit, tt.totalItems)
			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.totalItems, p.TotalItems)
		})
	}
}

func TestPaginatedEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Paginated(rec, []string{"a", "b"}, NewPagination(2, 10, 25))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	pagination, ok := body["pagination"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), pagination["page"])
	assert.Equal(t, float64(25), pagination["total_items"])
	assert.Equal(t, float64(3), pagination["total_pages"])
}

func TestErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Conflict(rec, "Payment already marked as paid")

	assert.Equal(t, http.StatusConflict, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.NotContains(t, body, "data")

	apiErr, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "CONFLICT", apiErr["code"])
	assert.Equal(t, "Payment already marked as paid", apiErr["message"])
}

func TestValidationErrorCarriesFieldDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"base_salary": "Base salary must be positive"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decodeBody(t, rec)
	apiErr := body["error"].(map[string]interface{})
	details := apiErr["details"].(map[string]interface{})
	assert.Equal(t, "Base salary must be positive", details["base_salary"])
}
