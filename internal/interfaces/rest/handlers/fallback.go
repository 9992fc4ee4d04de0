package handlers

import (
	"net/http"
	"path"
	"strings"

	"github.com/DanielPopoola/northborne-storefront/internal/domain"
	"github.com/DanielPopoola/northborne-storefront/internal/interfaces/rest"
)

// NotFound serves storefront files when a static directory is configured and
// answers everything else with the JSON 404.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	if h.static != nil && (r.Method == http.MethodGet || r.Method == http.MethodHead) && h.hasStaticFile(r.URL.Path) {
		http.FileServer(h.static).ServeHTTP(w, r)
		return
	}

	rest.WriteError(w, domain.NewNotFoundError(), h.logger)
}

func (h *Handlers) hasStaticFile(urlPath string) bool {
	name := path.Clean("/" + urlPath)
	if hasDotSegment(name) {
		return false
	}

	f, err := h.static.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false
	}
	if !info.IsDir() {
		return true
	}

	index, err := h.static.Open(path.Join(name, "index.html"))
	if err != nil {
		return false
	}
	index.Close()
	return true
}

// hasDotSegment reports hidden files or directories such as /.env or /.git/config.
func hasDotSegment(name string) bool {
	for _, segment := range strings.Split(name, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}
