package docx

type HTTPMethod string

const (
	GET    HTTPMethod = "GET"
	POST   HTTPMethod = "POST"
	PUT    HTTPMethod = "PUT"
	DELETE HTTPMethod = "DELETE"
)

type Authentication string

const (
	None   Authentication = "none"
	ApiKey Authentication = "apiKey"
)

// Header documents a header or a query parameter
type Header struct {
	Name        string `json:"name"`
	Value       string `json:"value,omitempty"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
	Default     any    `json:"default,omitempty"`
}

type PathParam struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
}

// Endpoint documents one gateway call behind a resource/operation pair
type Endpoint struct {
	Resource  string     `json:"resource"`
	Operation string     `json:"operation"`
	Path      string     `json:"path"`
	Method    HTTPMethod `json:"method"`
	Summary   string     `json:"summary,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	Cacheable bool       `json:"cacheable"`
	Binary    bool       `json:"binary"`

	Auth        Authentication    `json:"auth"`
	AuthDetails map[string]string `json:"authDetails,omitempty"`
	Headers     []Header          `json:"headers,omitempty"`

	PathParams  []PathParam `json:"pathParams,omitempty"`
	QueryParams []Header    `json:"queryParams,omitempty"`

	// Parameters accepted by the action, which are not always gateway fields
	ActionParams []Header `json:"actionParams,omitempty"`

	RequestExample any `json:"requestExample,omitempty"`
}

func NewEndpoint(path string, method HTTPMethod) *Endpoint {
	return &Endpoint{
		Path:   path,
		Method: method,
		Auth:   None,
		Tags:   []string{},
	}
}

func (e *Endpoint) WithOperation(resource, operation string) *Endpoint {
	e.Resource = resource
	e.Operation = operation
	return e
}

func (e *Endpoint) WithSummary(summary string) *Endpoint {
	e.Summary = summary
	return e
}

func (e *Endpoint) WithTags(tags ...string) *Endpoint {
	e.Tags = append(e.Tags, tags...)
	return e
}

func (e *Endpoint) WithAuth(auth Authentication, details map[string]string) *Endpoint {
	e.Auth = auth
	e.AuthDetails = details
	return e
}

func (e *Endpoint) WithHeader(name, value string, required bool) *Endpoint {
	e.Headers = append(e.Headers, Header{Name: name, Value: value, Required: required})
	return e
}

func (e *Endpoint) WithPathParam(name, paramType, description string, required bool) *Endpoint {
	e.PathParams = append(e.PathParams, PathParam{
		Name:        name,
		Type:        paramType,
		Description: description,
		Required:    required,
	})
	return e
}

// WithQueryParam adds a query parameter; value is the example shown in curl
func (e *Endpoint) WithQueryParam(name, value string, required bool) *Endpoint {
	e.QueryParams = append(e.QueryParams, Header{Name: name, Value: value, Required: required})
	return e
}

func (e *Endpoint) WithActionParam(p Header) *Endpoint {
	e.ActionParams = append(e.ActionParams, p)
	return e
}

func (e *Endpoint) WithRequestExample(example any) *Endpoint {
	e.RequestExample = example
	return e
}
