package reference

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository loads reference data from PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository instance
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Load builds a Universe from reference.constituents.
// The representative sample stays the built-in one.
func (r *Repository) Load(ctx context.Context) (*Universe, error) {
	query := `
		SELECT ticker, sector
		FROM reference.constituents
		WHERE is_active = TRUE
		ORDER BY sector, ticker
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query constituents: %w", err)
	}
	defer rows.Close()

	constituents := make(map[string][]string)
	count := 0
	for rows.Next() {
		var ticker, sector string
		if err := rows.Scan(&ticker, &sector); err != nil {
			return nil, fmt.Errorf("scan constituent: %w", err)
		}
		if !ValidFormat(ticker) {
			continue
		}
		constituents[sector] = append(constituents[sector], Normalize(ticker))
		count++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate constituents: %w", err)
	}

	if count == 0 {
		return nil, fmt.Errorf("reference.constituents is empty")
	}

	return NewUniverse(constituents, representativeBySector), nil
}
