package http

import (
	"sync"

	"sales/internal/generated/servers"

	"github.com/swaggo/swag"
)

// apiDoc hands the embedded OpenAPI document to swag, which the swagger UI
// under /swagger/ reads as doc.json.
type apiDoc struct{}

var readAPIDoc = sync.OnceValue(func() string {
	doc, err := servers.GetSwagger()
	if err != nil {
		return "{}"
	}
	data, err := doc.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(data)
})

// ReadDoc returns the bundled API document as JSON.
func (apiDoc) ReadDoc() string {
	return readAPIDoc()
}

func init() {
	swag.Register(swag.Name, apiDoc{})
}
