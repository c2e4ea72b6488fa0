// Summary statistics over an nginx access-log collection.
package logstats

import (
	"context"
	"fmt"
	"io"

	"github.com/packrat-io/packrat/docstore"
)

// Methods is the fixed set of HTTP methods reported on, in display order.
var Methods = []string{"GET", "POST", "PUT", "PATCH", "DELETE"}

// Stats is one snapshot of an access-log collection. Methods outside the
// fixed report set contribute to Total but not to ByMethod.
type Stats struct {
	Total       int64
	ByMethod    map[string]int64
	StatusCheck int64
}

// Collect computes log statistics by issuing one count per report line. The
// counts are not a consistent snapshot: logs inserted while Collect runs may
// appear in some counts and not others.
func Collect(ctx context.Context, store docstore.DocStore, collection string) (*Stats, error) {
	total, err := store.CountDocuments(ctx, collection, nil)
	if err != nil {
		return nil, fmt.Errorf("counting logs: %w", err)
	}
	byMethod := make(map[string]int64, len(Methods))
	for _, m := range Methods {
		n, err := store.CountDocuments(ctx, collection, map[string]any{"method": m})
		if err != nil {
			return nil, fmt.Errorf("counting %s logs: %w", m, err)
		}
		byMethod[m] = n
	}
	statusCheck, err := store.CountDocuments(ctx, collection, map[string]any{"method": "GET", "path": "/status"})
	if err != nil {
		return nil, fmt.Errorf("counting status checks: %w", err)
	}
	return &Stats{
		Total:       total,
		ByMethod:    byMethod,
		StatusCheck: statusCheck,
	}, nil
}

// Render writes the stats in the fixed report layout:
//
//	94778 logs
//	Methods:
//		method GET: 93842
//		...
//	47415 status check
func (s *Stats) Render(w io.Writer) {
	fmt.Fprintf(w, "%d logs\n", s.Total)
	fmt.Fprintln(w, "Methods:")
	for _, m := range Methods {
		fmt.Fprintf(w, "\tmethod %s: %d\n", m, s.ByMethod[m])
	}
	fmt.Fprintf(w, "%d status check\n", s.StatusCheck)
}
