package sdl

import (
	"fmt"

	"github.com/elliotmr/sdl/sys"
	"github.com/pkg/errors"
)

// ErrorCode classifies a library-reported failure.
type ErrorCode int

const (
	CodeOther ErrorCode = iota // free-form message, see Error.Message
	CodeNoMem
	CodeRead
	CodeWrite
	CodeSeek
	CodeUnsupported
)

var codeNames = [...]string{
	CodeOther:       "unknown error",
	CodeNoMem:       "out of memory",
	CodeRead:        "error reading from datastream",
	CodeWrite:       "error writing to datastream",
	CodeSeek:        "error seeking in datastream",
	CodeUnsupported: "unsupported operation",
}

func (c ErrorCode) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
	return codeNames[c]
}

// Sentinels for errors.Is matching against library errors by code.
var (
	ErrNoMem       = &Error{Code: CodeNoMem}
	ErrRead        = &Error{Code: CodeRead}
	ErrWrite       = &Error{Code: CodeWrite}
	ErrSeek        = &Error{Code: CodeSeek}
	ErrUnsupported = &Error{Code: CodeUnsupported}
)

// Error is a failure reported by the native library through its global
// error slot.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	if e.Code == CodeOther {
		return "sdl: " + e.Message
	}
	return "sdl: error code: " + e.Code.String()
}

// Is matches sentinels by code. Two CodeOther errors never match, their
// messages are not comparable identities.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code != CodeOther && e.Code == t.Code
}

func translateCode(code int) ErrorCode {
	switch code {
	case sys.ENoMem:
		return CodeNoMem
	case sys.EFRead:
		return CodeRead
	case sys.EFWrite:
		return CodeWrite
	case sys.EFSeek:
		return CodeSeek
	case sys.Unsupported:
		return CodeUnsupported
	}
	return CodeOther
}

// GetError reads the library's global error slot and returns it as an
// *Error.
//
// The slot is overwritten by the next library call on the same thread, so
// GetError must be called immediately after the failing call, before
// anything else touches lib. Later reads may describe an unrelated call or
// nothing at all.
func GetError(lib sys.Library) error {
	code, text := lib.GetError()
	return &Error{Code: translateCode(code), Message: text}
}

// ClearError empties the global error slot.
func ClearError(lib sys.Library) {
	lib.ClearError()
}

// Lifecycle misuse. These are detected by the safe layer before any native
// call is made.
var (
	ErrAlreadyInitialized = errors.New("sdl: library already initialized")
	ErrContextClosed      = errors.New("sdl: context has been shut down")
	ErrSubsystemActive    = errors.New("sdl: subsystem already active")
	ErrSubsystemClosed    = errors.New("sdl: subsystem has been shut down")
)
