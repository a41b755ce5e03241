// Package result holds the success/error wrapper returned by the reminder
// data source in place of Go errors.
package result

// Unit is the payload of operations that return nothing on success.
type Unit struct{}

// Result is either a success carrying a value or an error carrying a message.
type Result[T any] struct {
	value   T
	message string
	ok      bool
}

// Success wraps value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Error wraps a failure message.
func Error[T any](message string) Result[T] {
	return Result[T]{message: message}
}

// Done is the success value of a Unit result.
func Done() Result[Unit] {
	return Success(Unit{})
}

func (r Result[T]) IsSuccess() bool {
	return r.ok
}

func (r Result[T]) IsError() bool {
	return !r.ok
}

// Value returns the wrapped value, the zero value for an error.
func (r Result[T]) Value() T {
	return r.value
}

// Message returns the error message, empty for a success.
func (r Result[T]) Message() string {
	return r.message
}

// Get returns the value and whether the result is a success.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.ok
}
