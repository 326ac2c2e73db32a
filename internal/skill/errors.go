package skill

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedRequestType = errors.New("unsupported request type")
	ErrNilRequest             = errors.New("nil request")
)

// UnsupportedRequestTypeError carries the request type that has no handler.
type UnsupportedRequestTypeError struct {
	Type string
}

func (e *UnsupportedRequestTypeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnsupportedRequestType, e.Type)
}

func (e *UnsupportedRequestTypeError) Is(target error) bool {
	return target == ErrUnsupportedRequestType
}

// DispatchError is the error delivered through the completion callback.
type DispatchError struct {
	RequestID string
	Err       error
}

func (e *DispatchError) Error() string {
	if e.RequestID == "" {
		return fmt.Sprintf("dispatch: %v", e.Err)
	}
	return fmt.Sprintf("dispatch request %s: %v", e.RequestID, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
