package todo

import "context"

// DeletionRecorder wraps a DataSource and remembers every item whose
// deletion succeeded, in deletion order. It lets callers report what a
// purge removed without widening the DataSource contract.
type DeletionRecorder struct {
	source  DataSource
	deleted []string
}

// NewDeletionRecorder creates a DeletionRecorder forwarding to source.
func NewDeletionRecorder(source DataSource) *DeletionRecorder {
	return &DeletionRecorder{
		source:  source,
		deleted: make([]string, 0),
	}
}

// RetrieveTodos forwards to the wrapped source.
func (r *DeletionRecorder) RetrieveTodos(ctx context.Context, user string) ([]string, error) {
	return r.source.RetrieveTodos(ctx, user)
}

// DeleteTodo forwards to the wrapped source and records item on success.
func (r *DeletionRecorder) DeleteTodo(ctx context.Context, item string) error {
	if err := r.source.DeleteTodo(ctx, item); err != nil {
		return err
	}
	r.deleted = append(r.deleted, item)
	return nil
}

// Deleted returns the successfully deleted items in deletion order.
func (r *DeletionRecorder) Deleted() []string {
	return r.deleted
}
