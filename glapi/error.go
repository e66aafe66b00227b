package glapi

import "fmt"

// Error is a driver error reported by GetError.
type Error Enum

const (
	InvalidEnum                 Error = INVALID_ENUM
	InvalidValue                Error = INVALID_VALUE
	InvalidOperation            Error = INVALID_OPERATION
	StackOverflow               Error = STACK_OVERFLOW
	StackUnderflow              Error = STACK_UNDERFLOW
	OutOfMemory                 Error = OUT_OF_MEMORY
	InvalidFramebufferOperation Error = INVALID_FRAMEBUFFER_OPERATION
	ContextLost                 Error = CONTEXT_LOST
)

func (e Error) Error() string {
	switch e {
	case InvalidEnum:
		return "gl: invalid enum"
	case InvalidValue:
		return "gl: invalid value"
	case InvalidOperation:
		return "gl: invalid operation"
	case StackOverflow:
		return "gl: stack overflow"
	case StackUnderflow:
		return "gl: stack underflow"
	case OutOfMemory:
		return "gl: out of memory"
	case InvalidFramebufferOperation:
		return "gl: invalid framebuffer operation"
	case ContextLost:
		return "gl: context lost"
	}
	return fmt.Sprintf("gl: unknown error %#04x", uint32(e))
}

// CheckError returns the oldest pending driver error, or nil.
func CheckError(f Functions) error {
	code := f.GetError()
	if code == NO_ERROR {
		return nil
	}
	return Error(code)
}

// MustCheckError panics if the driver reports an error.
func MustCheckError(f Functions) {
	if err := CheckError(f); err != nil {
		panic(err)
	}
}
