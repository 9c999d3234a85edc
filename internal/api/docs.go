package api

import (
    _ "embed"
    "net/http"

    yaml "gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openapiYAML []byte

// OpenAPIYAMLHandler serves the raw OpenAPI document.
func (s *Server) OpenAPIYAMLHandler(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "application/yaml")
    _, _ = w.Write(openapiYAML)
}

// OpenAPIJSONHandler serves the same document converted to JSON for
// tooling that does not read YAML.
func (s *Server) OpenAPIJSONHandler(w http.ResponseWriter, r *http.Request) {
    var obj map[string]any
    if err := yaml.Unmarshal(openapiYAML, &obj); err != nil {
        writeJSON(w, 500, map[string]any{"success": false, "error": "OpenAPI parse failed: " + err.Error()})
        return
    }
    writeJSON(w, 200, obj)
}
