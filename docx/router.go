package docx

import (
	"github.com/gofiber/fiber/v2"
)

type RouterDoc struct {
	BasePath  string      `json:"basePath"`
	Endpoints []*Endpoint `json:"endpoints"`
}

func NewRouterDoc(basePath string) *RouterDoc {
	return &RouterDoc{
		BasePath:  basePath,
		Endpoints: []*Endpoint{},
	}
}

func (r *RouterDoc) AddEndpoint(endpoint *Endpoint) *RouterDoc {
	r.Endpoints = append(r.Endpoints, endpoint)
	return r
}

// Find returns the endpoint of a resource/operation pair
func (r *RouterDoc) Find(resource, operation string) (*Endpoint, bool) {
	for _, e := range r.Endpoints {
		if e.Resource == resource && e.Operation == operation {
			return e, true
		}
	}
	return nil, false
}

// RegisterWithFiber serves the docs as JSON, or as curl examples with
// ?format=curl. ?resource= narrows the list.
func (r *RouterDoc) RegisterWithFiber(app fiber.Router, path string, curl *CurlGenerator) {
	app.Get(path, func(c *fiber.Ctx) error {
		doc := r
		if resource := c.Query("resource"); resource != "" {
			doc = r.filter(resource)
		}
		if c.Query("format") == string(CURL) {
			c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
			return c.SendString(curl.Markdown(doc))
		}
		return c.JSON(doc)
	})
}

func (r *RouterDoc) filter(resource string) *RouterDoc {
	out := NewRouterDoc(r.BasePath)
	for _, e := range r.Endpoints {
		if e.Resource == resource {
			out.AddEndpoint(e)
		}
	}
	return out
}
