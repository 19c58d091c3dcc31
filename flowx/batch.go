package flowx

import (
	"context"

	"github.com/Abraxas-365/wsapix/errx"
)

// Handler runs one item
type Handler func(ctx context.Context, item int, params Params) ([]Record, error)

// Result is the outcome of one item
type Result struct {
	Records []Record
	Err     error
	Item    int
}

// Output converts the result to records. A failed item becomes a single
// {"error": message} record.
func (r Result) Output() []Record {
	if r.Err != nil {
		return []Record{{JSON: map[string]any{"error": errx.MessageOf(r.Err)}, Item: r.Item}}
	}
	out := make([]Record, len(r.Records))
	for i, rec := range r.Records {
		rec.Item = r.Item
		out[i] = rec
	}
	return out
}

// RunBatch runs fn over items in order. Without continueOnFail the first
// error stops the batch and is returned; with it, failed items become error
// records and the batch carries on.
func RunBatch(ctx context.Context, items []Params, continueOnFail bool, fn Handler) ([]Record, error) {
	var out []Record
	for i, params := range items {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		records, err := fn(ctx, i, params)
		res := Result{Records: records, Err: err, Item: i}
		if err != nil && !continueOnFail {
			return out, err
		}
		out = append(out, res.Output()...)
	}
	return out, nil
}
