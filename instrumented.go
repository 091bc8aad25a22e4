package bvec

import "iter"

// Instrumented wraps a [Vec] and reports its operations to Prometheus: a
// gauge for the current length and counters for pushes, pops and rejected
// pushes. Like Vec itself, it is not thread-safe and is owned by a single
// goroutine.
type Instrumented[T any] struct {
	vec     *Vec[T]
	metrics *metrics
}

// Instrument wraps vec with the metrics described by config.
func Instrument[T any](vec *Vec[T], config *PrometheusConfig) *Instrumented[T] {
	if vec == nil {
		panic("vec can't be nil")
	}
	if config == nil {
		panic("config can't be nil")
	}

	i := &Instrumented[T]{
		vec:     vec,
		metrics: newMetrics(config),
	}
	i.metrics.length.Set(float64(vec.Len()))

	return i
}

// Vec returns the wrapped vector. Mutations made through it bypass the
// metrics.
func (i *Instrumented[T]) Vec() *Vec[T] {
	return i.vec
}

func (i *Instrumented[T]) TryPush(value T) bool {
	if !i.vec.TryPush(value) {
		i.metrics.rejections.Inc()
		return false
	}
	i.metrics.pushes.Inc()
	i.metrics.length.Inc()
	return true
}

func (i *Instrumented[T]) Pop() (T, bool) {
	value, ok := i.vec.Pop()
	if ok {
		i.metrics.pops.Inc()
		i.metrics.length.Dec()
	}
	return value, ok
}

func (i *Instrumented[T]) Get(index int) (T, bool) {
	return i.vec.Get(index)
}

func (i *Instrumented[T]) Set(index int, value T) bool {
	return i.vec.Set(index, value)
}

func (i *Instrumented[T]) Clear() {
	i.vec.Clear()
	i.metrics.length.Set(0)
}

func (i *Instrumented[T]) Truncate(n int) {
	i.vec.Truncate(n)
	i.metrics.length.Set(float64(i.vec.Len()))
}

func (i *Instrumented[T]) Len() int {
	return i.vec.Len()
}

func (i *Instrumented[T]) Cap() int {
	return i.vec.Cap()
}

func (i *Instrumented[T]) IsEmpty() bool {
	return i.vec.IsEmpty()
}

func (i *Instrumented[T]) IsFull() bool {
	return i.vec.IsFull()
}

func (i *Instrumented[T]) Iter() iter.Seq[T] {
	return i.vec.Iter()
}
