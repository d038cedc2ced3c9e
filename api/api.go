// Package api embeds the OpenAPI contract of the HTTP adapter.
package api

import (
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yml
var spec []byte

var registerOnce sync.Once

// GetSwagger parses and validates the embedded contract.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, err
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, err
	}
	return doc, nil
}

// RegisterSwaggerDoc publishes the contract to swag so the echo-swagger UI
// serves it as doc.json. Registering twice is a no-op.
func RegisterSwaggerDoc(doc *openapi3.T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	registerOnce.Do(func() {
		swag.Register(swag.Name, &swag.Spec{
			InfoInstanceName: swag.Name,
			Title:            doc.Info.Title,
			Version:          doc.Info.Version,
			Description:      doc.Info.Description,
			SwaggerTemplate:  string(raw),
		})
	})
	return nil
}
