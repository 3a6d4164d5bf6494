// Package sequence allocates the human-readable numbers of plans, work orders and tasks.
package sequence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// LastFunc reports the highest sequence value already used in a scope, 0 when none
type LastFunc func(ctx context.Context) (int64, error)

// Allocator hands out the next sequence value for a scope.
// last seeds the sequence from the stored numbers.
type Allocator interface {
	Next(ctx context.Context, scope string, last LastFunc) (int64, error)
}

// TableAllocator derives the next value from the highest number stored in the scope,
// so gaps left by deleted records are never reused. Two concurrent callers in the
// same scope can receive the same value; the unique number index turns that into a
// conflict.
type TableAllocator struct{}

// NewTableAllocator creates a table based allocator
func NewTableAllocator() *TableAllocator {
	return &TableAllocator{}
}

// Next returns last+1
func (a *TableAllocator) Next(ctx context.Context, scope string, last LastFunc) (int64, error) {
	n, err := last(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read last sequence of %s: %w", scope, err)
	}
	return n + 1, nil
}

// PlanScope is the numbering scope of a tenant's production plans
func PlanScope(tenantID uuid.UUID) string {
	return "production_plan:" + tenantID.String()
}

// WorkOrderScope is the numbering scope of a tenant's work orders
func WorkOrderScope(tenantID uuid.UUID) string {
	return "work_order:" + tenantID.String()
}

// TaskScope is the numbering scope of one work order's tasks
func TaskScope(workOrderID uuid.UUID) string {
	return "work_order_task:" + workOrderID.String()
}

// PlanNumber formats PP-<year>-<seq>
func PlanNumber(year int, seq int64) string {
	return fmt.Sprintf("PP-%d-%04d", year, seq)
}

// WorkOrderNumber formats WO-<year>-<seq>
func WorkOrderNumber(year int, seq int64) string {
	return fmt.Sprintf("WO-%d-%04d", year, seq)
}

// TaskNumber formats <work order number>-T<seq>
func TaskNumber(workOrderNumber string, seq int64) string {
	return fmt.Sprintf("%s-T%02d", workOrderNumber, seq)
}

// MaxAttempts bounds how many consecutive values Assign tries after collisions
const MaxAttempts = 3

// Assign allocates a value for scope and hands its formatted number to create.
// While create fails with an error isConflict accepts, the following value is tried,
// up to MaxAttempts in total. The last create error is returned.
func Assign(ctx context.Context, alloc Allocator, scope string, last LastFunc,
	format func(seq int64) string, create func(number string) error, isConflict func(error) bool) error {
	seq, err := alloc.Next(ctx, scope, last)
	if err != nil {
		return err
	}

	for attempt := int64(0); ; attempt++ {
		err = create(format(seq + attempt))
		if err == nil || !isConflict(err) || attempt+1 >= MaxAttempts {
			return err
		}
	}
}
