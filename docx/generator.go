package docx

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/Abraxas-365/wsapix/actionx"
	"github.com/Abraxas-365/wsapix/clients/wsapi"
	"github.com/Abraxas-365/wsapix/flowx"
)

type Format string

const (
	JSON Format = "json"
	CURL Format = "curl"
)

// Catalog is what the generator documents
type Catalog interface {
	Catalog() []actionx.Descriptor
	Build(resource, operation string, p flowx.Params) (wsapi.Request, error)
}

type Generator struct {
	catalog Catalog
}

func NewGenerator(catalog Catalog) *Generator {
	return &Generator{catalog: catalog}
}

var placeholder = regexp.MustCompile(`\{([^}]+)\}`)

// Router documents every operation in catalog order. Request examples come
// from building each operation with sample parameters.
func (g *Generator) Router() *RouterDoc {
	doc := NewRouterDoc("")
	for _, d := range g.catalog.Catalog() {
		path, _, _ := strings.Cut(d.Path, "?")
		e := NewEndpoint(path, HTTPMethod(d.Method)).
			WithOperation(d.Resource, d.Operation).
			WithSummary(d.Summary).
			WithTags(d.Resource).
			WithAuth(ApiKey, nil)
		e.Cacheable = d.Cacheable
		e.Binary = d.Binary

		inPath := map[string]bool{}
		for _, m := range placeholder.FindAllStringSubmatch(path, -1) {
			inPath[m[1]] = true
		}

		for _, p := range d.Params {
			if inPath[p.Name] {
				e.WithPathParam(p.Name, p.Type, p.Description, true)
				continue
			}
			e.WithActionParam(Header{Name: p.Name, Type: p.Type, Description: p.Description, Required: p.Required, Default: p.Default})
		}

		if req, err := g.catalog.Build(d.Resource, d.Operation, sampleParams(d.Params)); err == nil {
			for name, values := range req.Query {
				e.WithQueryParam(name, values[0], true)
			}
			if req.Body != nil {
				e.WithRequestExample(req.Body)
			}
		}
		if _, query, found := strings.Cut(d.Path, "?"); found {
			for _, pair := range strings.Split(query, "&") {
				name, value, _ := strings.Cut(pair, "=")
				e.WithQueryParam(name, placeholder.ReplaceAllString(value, "<$1>"), true)
			}
		}

		doc.AddEndpoint(e)
	}
	return doc
}

// WriteJSON writes the docs as indented JSON
func (g *Generator) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(g.Router(), "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteCurlDocs writes markdown with a curl command per operation
func (g *Generator) WriteCurlDocs(w io.Writer, baseURL string) error {
	_, err := io.WriteString(w, NewCurlGenerator(baseURL).Markdown(g.Router()))
	return err
}

// sampleParams fills every parameter with a value of its type so the
// operation can be built. Strings become <name>.
func sampleParams(params []actionx.Param) flowx.MapParams {
	out := flowx.MapParams{}
	for _, p := range params {
		switch {
		case len(p.Options) > 0:
			out[p.Name] = p.Options[0]
			if def, ok := p.Default.(string); ok && def != "" {
				out[p.Name] = def
			}
		case p.Default != nil:
			out[p.Name] = p.Default
		case p.Type == actionx.TypeNumber:
			out[p.Name] = 0
		case p.Type == actionx.TypeBoolean:
			out[p.Name] = false
		case p.Type == actionx.TypeObject:
			out[p.Name] = map[string]any{}
		default:
			out[p.Name] = fmt.Sprintf("<%s>", p.Name)
		}
	}
	return out
}
