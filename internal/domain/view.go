package domain

import (
	"context"
	"fmt"

	m "droidtest.dev/pkg/droidtest/internal/model"
)

// ViewArgs contains the arguments for browsing a generated FQN list.
type ViewArgs struct {
	FQNs m.Path
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	ids, err := w.LoadFQNs(ctx, args.FQNs)
	if err != nil {
		return fmt.Errorf("read fqn list %s: %w", args.FQNs, err)
	}

	fqns := make([]m.FQN, 0, len(ids))
	for _, id := range ids {
		fqn, ok := m.ParseFQN(id)
		if !ok {
			w.DisplayWarning(ctx, "skipping malformed entry: %s", id)
			continue
		}

		fqns = append(fqns, fqn)
	}

	if len(fqns) == 0 {
		w.DisplayInfo(ctx, "No test methods listed in %s.", args.FQNs)
		return nil
	}

	return w.DisplayFQNs(ctx, fqns)
}
