package api

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed api.yaml
var openAPISchema []byte

// GetSwagger parses the embedded OpenAPI schema. The admin dashboard serves
// it from /admin/schema so the frontend client can be regenerated against a
// running instance.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	swagger, err := loader.LoadFromData(openAPISchema)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded OpenAPI schema: %w", err)
	}

	return swagger, nil
}
