// write_batch.go implements the public Batch API for atomic multi-key
// writes with nested savepoints.
package ordkv

import "github.com/aalhour/ordkv/internal/batch"

// Batch buffers puts and deletes for atomic application to the Store
// that created it. Nothing is visible to the Store until Commit
// succeeds; discarding a Batch without committing (or calling Rollback)
// has no effect.
//
// A Batch is not safe for concurrent use.
type Batch struct {
	internal *batch.Batch
	store    *Store
}

// Put buffers an insert-or-overwrite of key with value.
func (b *Batch) Put(key, value []byte) {
	b.internal.Put(append([]byte(nil), key...), append([]byte(nil), value...))
}

// Delete buffers a deletion of key.
func (b *Batch) Delete(key []byte) {
	b.internal.Delete(append([]byte(nil), key...))
}

// Count returns the number of buffered operations.
func (b *Batch) Count() int {
	return b.internal.Count()
}

// Rollback discards every buffered operation and savepoint.
func (b *Batch) Rollback() {
	b.internal.Rollback()
}

// CreateSavepoint marks the batch's current buffer position and returns
// an opaque handle RollbackToSavepoint can later target.
func (b *Batch) CreateSavepoint() int {
	return b.internal.CreateSavepoint()
}

// RollbackToSavepoint discards every operation buffered since handle was
// created, and invalidates handle and any savepoint created after it. It
// returns ErrInvalidSavepoint if handle is not on the current stack.
func (b *Batch) RollbackToSavepoint(handle int) error {
	if !b.internal.RollbackToSavepoint(handle) {
		return ErrInvalidSavepoint
	}
	return nil
}

// Commit applies every buffered operation to the Store atomically: other
// readers never observe a partially-applied batch. It then clears the
// batch, so it can be reused.
func (b *Batch) Commit() error {
	if err := b.store.applyBatch(b.internal.Ops()); err != nil {
		return err
	}
	b.internal.Clear()
	return nil
}

// WithBatch runs fn against a fresh batch on s and commits it if fn
// returns nil; otherwise the batch is rolled back and fn's error is
// returned unchanged. This is the scoped-acquisition counterpart to the
// explicit NewBatch/Commit/Rollback API, guaranteeing rollback on any
// abnormal (error) exit from fn.
func (s *Store) WithBatch(fn func(*Batch) error) error {
	b := s.NewBatch()
	if err := fn(b); err != nil {
		b.Rollback()
		return err
	}
	return b.Commit()
}
