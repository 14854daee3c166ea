package seed

// batchWriter buffers entities of one kind and flushes them through a
// bulk-insert func whenever the buffer reaches the threshold, plus once more
// for the remainder. Peak memory stays O(threshold) and storage round trips
// stay O(count/threshold) no matter how many rows a stage produces.
type batchWriter[T any] struct {
	buf       []T
	threshold int
	flush     func([]T) error
	written   int
}

func newBatchWriter[T any](threshold int, flush func([]T) error) *batchWriter[T] {
	return &batchWriter[T]{
		buf:       make([]T, 0, threshold),
		threshold: threshold,
		flush:     flush,
	}
}

// Add buffers one entity, flushing synchronously when the buffer is full.
func (w *batchWriter[T]) Add(entity T) error {
	w.buf = append(w.buf, entity)
	if len(w.buf) >= w.threshold {
		return w.Flush()
	}
	return nil
}

// Flush writes out whatever is buffered. Call once after a generator's run to
// drain the remainder below the threshold.
func (w *batchWriter[T]) Flush() error {
	if len(w.buf) == 0 {
		return nil
	}
	if err := w.flush(w.buf); err != nil {
		return err
	}
	w.written += len(w.buf)
	w.buf = w.buf[:0]
	return nil
}

// Written reports how many entities have been flushed so far.
func (w *batchWriter[T]) Written() int {
	return w.written
}
