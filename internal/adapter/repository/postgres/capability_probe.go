package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openbooks/openbooks/internal/domain"
)

const probeEntryKindColumn = `
SELECT EXISTS (
    SELECT 1 FROM information_schema.columns
    WHERE table_name = 'entries' AND column_name = 'entry_kind'
)`

// ProbeCapabilities inspects the live schema once at startup. Deployments
// that never ran the entry_kind migration keep working through the legacy
// query variants and the dedup fallback.
func ProbeCapabilities(ctx context.Context, pool *pgxpool.Pool) (domain.SchemaCapabilities, error) {
	var hasKind bool
	if err := pool.QueryRow(ctx, probeEntryKindColumn).Scan(&hasKind); err != nil {
		return domain.SchemaCapabilities{}, err
	}

	return domain.SchemaCapabilities{EntryKindTagging: hasKind}, nil
}
