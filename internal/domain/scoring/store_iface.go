package scoring

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// SnapshotStore loads whole-table snapshots for a scoring run.
type SnapshotStore interface {
	LoadSnapshot(ctx context.Context) (Snapshot, error)
}

// Querier is the slice of pgxpool.Pool the store needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}
