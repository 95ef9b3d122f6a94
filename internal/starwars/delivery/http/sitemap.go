package http

import (
	"html/template"
	"net/http"
	"sort"
	"strings"

	"github.com/gorilla/mux"

	"github.com/tair/starwars-favorites/pkg/logger"
)

var sitemapTemplate = template.Must(template.New("sitemap").Parse(`<!DOCTYPE html>
<html>
<head><title>Star Wars Favorites API</title></head>
<body>
<h1>Star Wars Favorites API</h1>
<p>Available endpoints:</p>
<ul>
{{- range . }}
<li><a href="{{ . }}">{{ . }}</a></li>
{{- end }}
</ul>
</body>
</html>
`))

// Sitemap lists the GET routes of the router that take no parameters.
// Routes are collected on each request so late registrations show up.
func Sitemap(router *mux.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links := sitemapLinks(router)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if err := sitemapTemplate.Execute(w, links); err != nil {
			logger.Error(r.Context()).Err(err).Msg("Failed to render sitemap")
		}
	}
}

func sitemapLinks(router *mux.Router) []string {
	seen := make(map[string]bool)

	_ = router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		path, err := route.GetPathTemplate()
		if err != nil || path == "/" || strings.Contains(path, "{") {
			return nil
		}
		methods, err := route.GetMethods()
		if err != nil {
			return nil
		}
		for _, m := range methods {
			if m == http.MethodGet {
				seen[path] = true
			}
		}
		return nil
	})

	links := make([]string, 0, len(seen))
	for path := range seen {
		links = append(links, path)
	}
	sort.Strings(links)
	return links
}
