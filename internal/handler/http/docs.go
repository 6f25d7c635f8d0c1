package http

import (
	_ "embed"
	"net/http"
)

// openAPIDocument is the OpenAPI document of the proxy.
//
//go:embed openapi.yaml
var openAPIDocument []byte

// docsHTML renders the OpenAPI document with ReDoc.
const docsHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <title>JSONPlaceholder API Proxy - ReDoc</title>
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>body{margin:0;padding:0}</style>
  </head>
  <body>
    <redoc id="redoc-container"></redoc>
    <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
    <script>Redoc.init('/openapi.yaml', { suppressWarnings: true }, document.getElementById('redoc-container'));</script>
  </body>
</html>`

func (h *Handler) docs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(docsHTML))
}

func (h *Handler) openAPISpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	_, _ = w.Write(openAPIDocument)
}
