package actionx

import "sort"

// Descriptor documents one resource/operation pair
type Descriptor struct {
	Resource  string  `json:"resource"`
	Operation string  `json:"operation"`
	Summary   string  `json:"summary"`
	Method    string  `json:"method"`
	Path      string  `json:"path"`
	Params    []Param `json:"params"`
	Cacheable bool    `json:"cacheable"`
	Binary    bool    `json:"binary"`
}

// Catalog lists every registered operation sorted by resource then name
func (r *Router) Catalog() []Descriptor {
	var out []Descriptor
	for resource, ops := range r.resources {
		for _, op := range ops {
			params := op.Params
			if params == nil {
				params = []Param{}
			}
			out = append(out, Descriptor{
				Resource:  resource,
				Operation: op.Name,
				Summary:   op.Summary,
				Method:    op.Method,
				Path:      op.Path,
				Params:    params,
				Cacheable: op.Cacheable,
				Binary:    op.Run != nil,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Resource != out[j].Resource {
			return out[i].Resource < out[j].Resource
		}
		return out[i].Operation < out[j].Operation
	})
	return out
}
