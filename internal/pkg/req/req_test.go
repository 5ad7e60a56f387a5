package req

import (
	"net/http/httptest"
	"strings"
	"testing"

	"roomchat/internal/pkg/errs"
)

type testInput struct {
	Name string `json:"name"`
}

func TestBindJSON(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantCode    int
		wantName    string
	}{
		{
			name:        "valid body",
			contentType: "application/json",
			body:        `{"name":"general"}`,
			wantCode:    0,
			wantName:    "general",
		},
		{
			name:        "charset suffix accepted",
			contentType: "application/json; charset=utf-8",
			body:        `{"name":"general"}`,
			wantCode:    0,
			wantName:    "general",
		},
		{
			name:        "wrong content type",
			contentType: "text/plain",
			body:        `{"name":"general"}`,
			wantCode:    errs.ErrUnsupportedMediaType,
		},
		{
			name:        "invalid json",
			contentType: "application/json",
			body:        `{"name":`,
			wantCode:    errs.ErrInvalidJSONFormat,
		},
		{
			name:        "unknown field",
			contentType: "application/json",
			body:        `{"name":"general","extra":true}`,
			wantCode:    errs.ErrInvalidJSONFormat,
		},
		{
			name:        "trailing content",
			contentType: "application/json",
			body:        `{"name":"general"}{"name":"again"}`,
			wantCode:    errs.ErrExtraContentInBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/rooms", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", tt.contentType)

			var dst testInput
			customErr := BindJSON(r, &dst)

			if tt.wantCode == 0 {
				if customErr != nil {
					t.Fatalf("BindJSON() error = %v, want nil", customErr)
				}
				if dst.Name != tt.wantName {
					t.Errorf("dst.Name = %q, want %q", dst.Name, tt.wantName)
				}
				return
			}

			if customErr == nil {
				t.Fatal("BindJSON() error = nil, want error")
			}
			if customErr.Code != tt.wantCode {
				t.Errorf("error code = %d, want %d", customErr.Code, tt.wantCode)
			}
		})
	}
}
