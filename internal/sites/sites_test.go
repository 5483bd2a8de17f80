package sites

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestResolver() *Resolver {
	return New(map[string]Site{
		"Videos.Example.Com": {
			SiteName:     "videos",
			CanonicalURL: "https://videos.example.com",
			Title:        "Videos Example",
			PrimaryColor: "#e91e63",
		},
		"clips.example.com": {
			SiteName:     "clips",
			CanonicalURL: "https://clips.example.com",
			Title:        "Clips Example",
			PrimaryColor: "#2196f3",
		},
	}, Site{
		SiteName:     "default",
		CanonicalURL: "https://example.com",
		Title:        "Example",
		PrimaryColor: "#000000",
	})
}

func TestResolve(t *testing.T) {
	resolver := newTestResolver()

	tests := []struct {
		name         string
		host         string
		expectedHost string
		expectedSite string
	}{
		{
			name:         "correspondência exata",
			host:         "clips.example.com",
			expectedHost: "clips.example.com",
			expectedSite: "clips",
		},
		{
			name:         "hostname em maiúsculas",
			host:         "CLIPS.EXAMPLE.COM",
			expectedHost: "clips.example.com",
			expectedSite: "clips",
		},
		{
			name:         "chave do mapa normalizada na construção",
			host:         "videos.example.com",
			expectedHost: "videos.example.com",
			expectedSite: "videos",
		},
		{
			name:         "porta removida antes da busca",
			host:         "clips.example.com:8080",
			expectedHost: "clips.example.com",
			expectedSite: "clips",
		},
		{
			name:         "hostname desconhecido cai no padrão",
			host:         "outro.example.org",
			expectedHost: "outro.example.org",
			expectedSite: "default",
		},
		{
			name:         "hostname vazio cai no padrão",
			host:         "",
			expectedHost: "",
			expectedSite: "default",
		},
		{
			name:         "espaços em volta são ignorados",
			host:         "  clips.example.com  ",
			expectedHost: "clips.example.com",
			expectedSite: "clips",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, site := resolver.Resolve(tt.host)
			assert.Equal(t, tt.expectedHost, host)
			assert.Equal(t, tt.expectedSite, site.SiteName)
		})
	}
}

func TestResolveNeverErrors(t *testing.T) {
	resolver := New(nil, Site{SiteName: "default"})

	_, site := resolver.Resolve("qualquer.coisa:9999")
	assert.Equal(t, "default", site.SiteName)
}

func TestDefault(t *testing.T) {
	resolver := newTestResolver()
	assert.Equal(t, "default", resolver.Default().SiteName)
}
