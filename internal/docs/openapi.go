package docs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// OpenAPI3 converts the registered swagger doc to OpenAPI 3 and validates it.
func OpenAPI3(ctx context.Context) (*openapi3.T, error) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		return nil, fmt.Errorf("reading swagger doc: %w", err)
	}

	var doc2 openapi2.T
	if err := json.Unmarshal([]byte(raw), &doc2); err != nil {
		return nil, fmt.Errorf("parsing swagger doc: %w", err)
	}

	doc3, err := openapi2conv.ToV3(&doc2)
	if err != nil {
		return nil, fmt.Errorf("converting swagger doc: %w", err)
	}

	if err := doc3.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi doc: %w", err)
	}

	return doc3, nil
}

// OpenAPI3JSON is OpenAPI3 rendered for serving.
func OpenAPI3JSON(ctx context.Context) ([]byte, error) {
	doc, err := OpenAPI3(ctx)
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}
