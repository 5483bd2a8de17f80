package middlewarectx

import (
	"net/http"
	"strings"

	"github.com/mateuslro/creator-hub/internal/sites"
)

// Prefixos ignorados pela resolução de domínio (superfícies técnicas,
// não páginas do site).
var domainSkipPrefixes = []string{"/metrics", "/docs", "/health"}

// DomainMiddleware devolve o middleware que resolve o hostname da requisição
// para a configuração do site e carimba os cabeçalhos de resposta
// x-domain, x-site-name e x-canonical-url. Apenas cabeçalhos: a requisição
// nunca é bloqueada nem redirecionada aqui.
func DomainMiddleware(resolver *sites.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, prefix := range domainSkipPrefixes {
				if strings.HasPrefix(r.URL.Path, prefix) {
					next.ServeHTTP(w, r)
					return
				}
			}

			host, site := resolver.Resolve(r.Host)
			w.Header().Set("x-domain", host)
			w.Header().Set("x-site-name", site.SiteName)
			w.Header().Set("x-canonical-url", site.CanonicalURL)
			next.ServeHTTP(w, r)
		})
	}
}
