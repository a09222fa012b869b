package result

type Result[T any] interface {
	Value() T
	Err() error
}

type ConcreteResult[T any] struct {
	Val   T
	Error error
}

func Of[T any](v T, err error) ConcreteResult[T] {
	return ConcreteResult[T]{Val: v, Error: err}
}

func (r ConcreteResult[T]) Value() T {
	return r.Val
}

func (r ConcreteResult[T]) Err() error {
	return r.Error
}
