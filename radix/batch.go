package radix

import (
	"context"
	"fmt"

	"github.com/arloliu/cfgcode/factor"
	"golang.org/x/sync/errgroup"
)

// EncodeBatch encodes independent column sets concurrently.
//
// At most limit sets are encoded at once; limit <= 0 means no limit. Results are
// returned in the order of sets. The first failure cancels the sets that have not
// started yet and is returned with the index of the failing set.
func (e *Encoder) EncodeBatch(ctx context.Context, sets []factor.ColumnSet, limit int) ([]*Codes, error) {
	results := make([]*Codes, len(sets))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, set := range sets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			codes, err := e.Encode(set)
			if err != nil {
				return fmt.Errorf("column set %d: %w", i, err)
			}
			results[i] = codes

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
