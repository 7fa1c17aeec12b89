package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/taskboard-api/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name"`
		Type int    `json:"type"`
	}

	tests := []struct {
		name     string
		body     string
		wantPath string
		wantMsg  string
	}{
		{name: "valid", body: `{"name":"High","type":1}`},
		{name: "empty body", body: ``, wantMsg: "request body is required"},
		{name: "syntax error", body: `{"name":"High",}`, wantMsg: "request body is not valid JSON"},
		{name: "truncated", body: `{"name":`, wantMsg: "request body is not valid JSON"},
		{name: "wrong type", body: `{"type":"one"}`, wantPath: "type", wantMsg: "must be of type int"},
		{name: "trailing data", body: `{"name":"a"} {"name":"b"}`, wantMsg: "request body must contain a single JSON object"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var p payload
			err := DecodeJSON(httptest.NewRecorder(), r, &p)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				assert.Equal(t, "High", p.Name)
				return
			}
			var verr *validation.Error
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Issues, 1)
			assert.Equal(t, tt.wantPath, verr.Issues[0].Path)
			assert.Equal(t, tt.wantMsg, verr.Issues[0].Message)
		})
	}
}

func TestDecodeOptionalJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name"`
	}

	t.Run("empty body leaves value untouched", func(t *testing.T) {
		t.Parallel()
		p := payload{Name: "kept"}
		r := httptest.NewRequest(http.MethodPatch, "/", nil)
		require.NoError(t, DecodeOptionalJSON(httptest.NewRecorder(), r, &p))
		assert.Equal(t, "kept", p.Name)
	})

	t.Run("present body is decoded", func(t *testing.T) {
		t.Parallel()
		var p payload
		r := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"name":"set"}`))
		require.NoError(t, DecodeOptionalJSON(httptest.NewRecorder(), r, &p))
		assert.Equal(t, "set", p.Name)
	})

	t.Run("malformed body is still rejected", func(t *testing.T) {
		t.Parallel()
		var p payload
		r := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"name"`))
		var verr *validation.Error
		require.ErrorAs(t, DecodeOptionalJSON(httptest.NewRecorder(), r, &p), &verr)
	})
}
