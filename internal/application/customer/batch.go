package customer

import (
	"context"

	domain "github.com/mohammadpnp/customer-import/internal/domain/customer"
)

const DefaultBatchSize = 1000

type batchItem struct {
	rowNumber  int64
	raw        map[string]string
	validation domain.RowValidation
}

// Batch accumulates validated rows in stream order up to a fixed capacity.
// On flush it records pre-rejected rows on the job, bulk-inserts the valid
// candidates and reconciles per-row store failures back to the original row
// numbers via the index mapping captured before the insert call.
type Batch struct {
	size  int
	items []batchItem
}

func NewBatch(size int) *Batch {
	if size <= 0 {
		size = DefaultBatchSize
	}
	return &Batch{
		size:  size,
		items: make([]batchItem, 0, size),
	}
}

func (b *Batch) Add(rowNumber int64, raw map[string]string, validation domain.RowValidation) {
	b.items = append(b.items, batchItem{
		rowNumber:  rowNumber,
		raw:        raw,
		validation: validation,
	})
}

func (b *Batch) Full() bool {
	return len(b.items) >= b.size
}

func (b *Batch) Len() int {
	return len(b.items)
}

// Flush settles the held rows against the job record and clears the batch.
// Store failures are recoverable: an insert error rejects the affected rows
// and never propagates. Flushing an empty batch is a no-op, so a row is
// never recorded twice.
func (b *Batch) Flush(ctx context.Context, job *domain.ImportJob, store domain.CustomerBulkInserter) {
	if len(b.items) == 0 {
		return
	}

	candidates := make([]domain.Customer, 0, len(b.items))
	meta := make([]batchItem, 0, len(b.items))

	for _, item := range b.items {
		if !item.validation.Valid {
			job.RecordRejection(item.rowNumber, item.raw, item.validation.Errors)
			continue
		}
		candidates = append(candidates, *item.validation.Parsed)
		meta = append(meta, item)
	}

	if len(candidates) > 0 {
		result, err := store.BulkInsert(ctx, candidates)
		if err != nil {
			// No per-row detail: every candidate is treated as failed.
			for _, m := range meta {
				job.RecordRejection(m.rowNumber, m.raw, []string{err.Error()})
			}
		} else {
			failed := make(map[int]struct{}, len(result.Failed))
			for _, f := range result.Failed {
				if f.Index < 0 || f.Index >= len(meta) {
					continue
				}
				if _, seen := failed[f.Index]; seen {
					continue
				}
				failed[f.Index] = struct{}{}
				m := meta[f.Index]
				job.RecordRejection(m.rowNumber, m.raw, []string{f.Message})
			}
			job.RecordSuccess(int64(len(candidates) - len(failed)))
		}
	}

	b.items = b.items[:0]
}
