package docx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

type CurlGenerator struct {
	BaseURL string
}

func NewCurlGenerator(baseURL string) *CurlGenerator {
	return &CurlGenerator{
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GenerateCurl renders the gateway call of one endpoint
func (g *CurlGenerator) GenerateCurl(endpoint *Endpoint) (string, error) {
	var buf strings.Builder

	buf.WriteString("curl -X " + string(endpoint.Method))

	target := g.BaseURL + endpoint.Path
	if len(endpoint.QueryParams) > 0 {
		q := url.Values{}
		for _, p := range endpoint.QueryParams {
			q.Set(p.Name, p.Value)
		}
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + q.Encode()
	}
	fmt.Fprintf(&buf, " \"%s\"", target)

	if endpoint.Auth == ApiKey {
		for _, name := range []string{"X-Api-Key", "X-Instance-Id"} {
			value, ok := endpoint.AuthDetails[name]
			if !ok {
				value = "<" + strings.ToUpper(strings.ReplaceAll(strings.TrimPrefix(name, "X-"), "-", "_")) + ">"
			}
			fmt.Fprintf(&buf, " \\\n  -H \"%s: %s\"", name, value)
		}
	}

	for _, header := range endpoint.Headers {
		value := header.Value
		if value == "" {
			value = "<VALUE>"
		}
		fmt.Fprintf(&buf, " \\\n  -H \"%s: %s\"", header.Name, value)
	}

	if endpoint.RequestExample != nil {
		var body bytes.Buffer
		enc := json.NewEncoder(&body)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(endpoint.RequestExample); err != nil {
			return "", err
		}
		fmt.Fprintf(&buf, " \\\n  -d '%s'", strings.TrimSpace(body.String()))
	}

	return buf.String(), nil
}

// GenerateAllCurls keys each command by "resource.operation"
func (g *CurlGenerator) GenerateAllCurls(router *RouterDoc) (map[string]string, error) {
	results := make(map[string]string)

	for _, endpoint := range router.Endpoints {
		curl, err := g.GenerateCurl(endpoint)
		if err != nil {
			return nil, err
		}
		results[endpoint.Resource+"."+endpoint.Operation] = curl
	}

	return results, nil
}

// Markdown renders every endpoint with its curl command. Endpoints whose
// example cannot be rendered are listed without one.
func (g *CurlGenerator) Markdown(router *RouterDoc) string {
	var buf strings.Builder
	buf.WriteString("# WSAPI Curl Examples\n\n")

	resource := ""
	for _, endpoint := range router.Endpoints {
		if endpoint.Resource != resource {
			resource = endpoint.Resource
			fmt.Fprintf(&buf, "## %s\n\n", resource)
		}
		fmt.Fprintf(&buf, "### %s\n\n%s `%s %s`\n\n", endpoint.Operation, endpoint.Summary, endpoint.Method, endpoint.Path)
		if curl, err := g.GenerateCurl(endpoint); err == nil {
			fmt.Fprintf(&buf, "```bash\n%s\n```\n\n", curl)
		}
	}
	return buf.String()
}
