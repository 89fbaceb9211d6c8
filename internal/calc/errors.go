package calc

import "fmt"

// Error reports a scan, parse, or eval failure at a byte offset into
// the NFC-normalized input. Err keeps the underlying arithmetic error,
// if any, reachable through errors.Is and errors.As.
type Error struct {
	Off int
	Msg string
	Err error
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Err != nil {
		if msg != "" {
			msg += ": "
		}
		msg += e.Err.Error()
	}
	return fmt.Sprintf("calc: %s at offset %d", msg, e.Off)
}

func (e *Error) Unwrap() error { return e.Err }

func errAt(off int, format string, args ...any) *Error {
	return &Error{Off: off, Msg: fmt.Sprintf(format, args...)}
}
