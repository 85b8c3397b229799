package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/mohammadpnp/customer-import/internal/domain/customer"
)

// CustomerBulkInsertRepository persists one batch of customers per call with
// unordered semantics: rows with an already-taken email are skipped and
// reported back by their index in the batch, the rest are inserted. Rows are
// staged via COPY keyed by (batch_id, row_index) so store-level failures can
// be attributed without assuming the server preserves input order.
type CustomerBulkInsertRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerBulkInsertRepository(pool *pgxpool.Pool) *CustomerBulkInsertRepository {
	return &CustomerBulkInsertRepository{pool: pool}
}

func (r *CustomerBulkInsertRepository) BulkInsert(ctx context.Context, customers []domain.Customer) (domain.BulkInsertResult, error) {
	if len(customers) == 0 {
		return domain.BulkInsertResult{}, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.BulkInsertResult{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	batchID := uuid.NewString()

	staged := make([][]any, 0, len(customers))
	for i, c := range customers {
		staged = append(staged, []any{batchID, int64(i), c.FullName, c.Email, c.DateOfBirth, c.Timezone})
	}

	if _, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"stg_customers"},
		[]string{"batch_id", "row_index", "full_name", "email", "date_of_birth", "timezone"},
		pgx.CopyFromRows(staged),
	); err != nil {
		return domain.BulkInsertResult{}, fmt.Errorf("copy customers staging: %w", err)
	}

	failed, err := insertStagedCustomers(ctx, tx, batchID)
	if err != nil {
		return domain.BulkInsertResult{}, err
	}

	if _, err := tx.Exec(ctx, "DELETE FROM stg_customers WHERE batch_id = $1", batchID); err != nil {
		return domain.BulkInsertResult{}, fmt.Errorf("cleanup stg_customers: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.BulkInsertResult{}, fmt.Errorf("commit bulk insert: %w", err)
	}

	return domain.BulkInsertResult{
		Inserted: len(customers) - len(failed),
		Failed:   failed,
	}, nil
}

// insertStagedCustomers inserts the deduplicated staged rows and returns the
// indexes that were not inserted. A staged row loses either because an
// earlier row in the same batch claimed its email, or because the email
// already exists in customers.
func insertStagedCustomers(ctx context.Context, tx pgx.Tx, batchID string) ([]domain.RowInsertError, error) {
	rows, err := tx.Query(ctx, `
WITH winners AS (
    SELECT DISTINCT ON (email) row_index, full_name, email, date_of_birth, timezone
    FROM stg_customers
    WHERE batch_id = $1
    ORDER BY email, row_index
), inserted AS (
    INSERT INTO customers (full_name, email, date_of_birth, timezone, created_at, updated_at)
    SELECT full_name, email, date_of_birth, timezone, NOW(), NOW()
    FROM winners
    ON CONFLICT (email) DO NOTHING
    RETURNING email
)
SELECT s.row_index, s.email
FROM stg_customers s
LEFT JOIN winners w ON w.row_index = s.row_index
LEFT JOIN inserted i ON i.email = s.email
WHERE s.batch_id = $1 AND (w.row_index IS NULL OR i.email IS NULL)
ORDER BY s.row_index
`, batchID)
	if err != nil {
		return nil, fmt.Errorf("insert staged customers: %w", err)
	}
	defer rows.Close()

	var failed []domain.RowInsertError
	for rows.Next() {
		var rowIndex int64
		var email string
		if err := rows.Scan(&rowIndex, &email); err != nil {
			return nil, err
		}
		failed = append(failed, domain.RowInsertError{
			Index:   int(rowIndex),
			Message: fmt.Sprintf("duplicate key value violates unique constraint \"customers_email_key\" (email=%s)", email),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return failed, nil
}
