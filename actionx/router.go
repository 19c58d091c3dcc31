package actionx

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/Abraxas-365/wsapix/cachex"
	"github.com/Abraxas-365/wsapix/clients/wsapi"
	"github.com/Abraxas-365/wsapix/flowx"
	"github.com/Abraxas-365/wsapix/logx"
)

// Invocation runs one operation over a batch of items
type Invocation struct {
	Resource       string         `json:"resource"`
	Operation      string         `json:"operation"`
	Items          []flowx.Params `json:"-"`
	ContinueOnFail bool           `json:"continueOnFail"`
}

// Router dispatches invocations to the operation table
type Router struct {
	gateway   Gateway
	cache     *cachex.Cache
	resources map[string]map[string]Operation
	ttl       int
	logger    *logx.Logger
}

// RouterOption configures a Router
type RouterOption func(*Router)

// WithDefaultTTL sets the cache TTL in seconds used when an invocation
// gives none
func WithDefaultTTL(seconds int) RouterOption {
	return func(r *Router) {
		if seconds > 0 {
			r.ttl = seconds
		}
	}
}

func WithLogger(l *logx.Logger) RouterOption {
	return func(r *Router) { r.logger = l }
}

// NewRouter creates a router over every built-in resource. cache may be
// nil, which disables caching.
func NewRouter(gateway Gateway, cache *cachex.Cache, opts ...RouterOption) *Router {
	r := &Router{
		gateway:   gateway,
		cache:     cache,
		resources: make(map[string]map[string]Operation),
		ttl:       DefaultCacheTTLSeconds,
		logger:    logx.GetLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	for resource, ops := range builtinResources() {
		for _, op := range ops {
			_ = r.Register(resource, op)
		}
	}
	return r
}

// Register adds an operation to the table
func (r *Router) Register(resource string, op Operation) error {
	ops, found := r.resources[resource]
	if !found {
		ops = make(map[string]Operation)
		r.resources[resource] = ops
	}
	if _, exists := ops[op.Name]; exists {
		return actionErrors.New(ErrDuplicate).WithDetail("resource", resource).WithDetail("operation", op.Name)
	}
	ops[op.Name] = op
	return nil
}

// Resolve looks up an operation. The resource is checked first.
func (r *Router) Resolve(resource, operation string) (Operation, error) {
	ops, found := r.resources[resource]
	if !found {
		return Operation{}, unknownResource(resource)
	}
	op, found := ops[operation]
	if !found {
		return Operation{}, unknownOperation(resource, operation)
	}
	return op, nil
}

// Resources lists the registered resource names in order
func (r *Router) Resources() []string {
	names := make([]string, 0, len(r.resources))
	for name := range r.resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build returns the gateway request an operation would send for p, without
// sending it. Operations returning binary data have no plain request.
func (r *Router) Build(resource, operation string, p flowx.Params) (wsapi.Request, error) {
	op, err := r.Resolve(resource, operation)
	if err != nil {
		return wsapi.Request{}, err
	}
	if op.Build == nil {
		return wsapi.Request{}, actionErrors.New(ErrNotBuildable).
			WithDetail("resource", resource).
			WithDetail("operation", operation)
	}
	call, err := op.Build(p)
	if err != nil {
		return wsapi.Request{}, err
	}
	return call.Request, nil
}

// Execute runs the invocation item by item. No items means a single item
// with no parameters. Lookup failures are per item, so continueOnFail turns
// them into error records like any other failure.
func (r *Router) Execute(ctx context.Context, inv Invocation) ([]flowx.Record, error) {
	items := inv.Items
	if len(items) == 0 {
		items = []flowx.Params{flowx.MapParams{}}
	}

	return flowx.RunBatch(ctx, items, inv.ContinueOnFail, func(ctx context.Context, item int, p flowx.Params) ([]flowx.Record, error) {
		op, err := r.Resolve(inv.Resource, inv.Operation)
		if err != nil {
			return nil, err
		}
		return r.run(ctx, inv.Resource, op, p, item)
	})
}

func (r *Router) run(ctx context.Context, resource string, op Operation, p flowx.Params, item int) ([]flowx.Record, error) {
	if op.Run != nil {
		return op.Run(ctx, r.gateway, p)
	}

	call, err := op.Build(p)
	if err != nil {
		return nil, err
	}

	var key string
	if r.cache != nil && op.Cacheable && p.BoolOr(paramCacheResults, false) {
		subject := ""
		if op.CacheKey != "" {
			subject = p.StringOr(op.CacheKey, "")
		}
		key = cachex.MakeKey(resource, op.Name, subject, r.gateway.InstanceID(), r.gateway.BaseURL())
		if raw, hit := r.cache.Read(ctx, key); hit {
			r.logger.Debug("%s.%s served from cache", resource, op.Name)
			return flowx.NewJSONRecords(raw, item), nil
		}
	}

	raw, err := r.gateway.Do(ctx, call.Request)
	if err != nil {
		return nil, err
	}

	if key != "" && raw != nil {
		ttl := time.Duration(cacheTTLSeconds(p, r.ttl)) * time.Second
		if err := r.cache.Write(ctx, key, raw, ttl); err != nil {
			r.logger.Debug("%s.%s result not cached: %v", resource, op.Name, err)
		}
	}

	return output(call, raw, item), nil
}

func output(call Call, raw json.RawMessage, item int) []flowx.Record {
	if call.Echo != nil {
		body := map[string]any{"success": true}
		for k, v := range call.Echo {
			body[k] = v
		}
		return flowx.NewJSONRecords(body, item)
	}
	if raw == nil {
		return flowx.NewJSONRecords(map[string]any{"success": true}, item)
	}
	return flowx.NewJSONRecords(raw, item)
}

func builtinResources() map[string][]Operation {
	return map[string][]Operation{
		"account":  accountOperations(),
		"calls":    callsOperations(),
		"chat":     chatOperations(),
		"contacts": contactsOperations(),
		"groups":   groupsOperations(),
		"instance": instanceOperations(),
		"media":    mediaOperations(),
		"message":  messageOperations(),
		"session":  sessionOperations(),
		"users":    usersOperations(),
	}
}
