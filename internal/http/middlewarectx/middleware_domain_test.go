package middlewarectx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mateuslro/creator-hub/internal/sites"
)

func TestDomainMiddleware(t *testing.T) {
	resolver := sites.New(map[string]sites.Site{
		"clips.example.com": {
			SiteName:     "clips",
			CanonicalURL: "https://clips.example.com",
		},
	}, sites.Site{
		SiteName:     "default",
		CanonicalURL: "https://example.com",
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})
	handler := DomainMiddleware(resolver)(next)

	tests := []struct {
		name              string
		host              string
		path              string
		expectedSiteName  string
		expectedCanonical string
	}{
		{
			name:              "domínio conhecido carimba os cabeçalhos do site",
			host:              "clips.example.com",
			path:              "/api/creators",
			expectedSiteName:  "clips",
			expectedCanonical: "https://clips.example.com",
		},
		{
			name:              "domínio com porta resolve pelo hostname",
			host:              "clips.example.com:8080",
			path:              "/api/creators",
			expectedSiteName:  "clips",
			expectedCanonical: "https://clips.example.com",
		},
		{
			name:              "domínio desconhecido cai no site padrão",
			host:              "outro.example.org",
			path:              "/api/creators",
			expectedSiteName:  "default",
			expectedCanonical: "https://example.com",
		},
		{
			name:             "rota técnica não recebe cabeçalhos de domínio",
			host:             "clips.example.com",
			path:             "/metrics",
			expectedSiteName: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Host = tt.host
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.expectedSiteName, w.Header().Get("x-site-name"))
			assert.Equal(t, tt.expectedCanonical, w.Header().Get("x-canonical-url"))
		})
	}
}

// A resolução nunca bloqueia nem redireciona, apenas anota a resposta.
func TestDomainMiddlewareNeverBlocks(t *testing.T) {
	resolver := sites.New(nil, sites.Site{SiteName: "default"})

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})
	handler := DomainMiddleware(resolver)(next)

	req := httptest.NewRequest(http.MethodGet, "/qualquer", nil)
	req.Host = ""
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
