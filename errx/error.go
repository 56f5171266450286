package errx

import (
	"errors"
	"fmt"
	"runtime/debug"
)

const (
	DefaultErrCode    = 1
	InputErrCode      = 2
	DefaultErrMessage = "internal error"
)

type AppError struct {
	fatal   bool
	code    int
	message string
	stack   string
	basic   error
}

// New vals: string | int | error
func New(vals ...any) *AppError {
	err := &AppError{code: DefaultErrCode, message: DefaultErrMessage}

	for _, val := range vals {
		switch v := val.(type) {
		case int:
			err.code = v
		case string:
			err.message = v
		case *AppError:
			err.code = v.code
			err.message = v.message
			err.basic = v.basic
		case error:
			if len(vals) == 1 {
				err.message = v.Error()
			}
			err.basic = v
		}
	}
	return err
}

func (e *AppError) Fatal() *AppError {
	e.fatal = true
	e.stack = string(debug.Stack())
	return e
}

func (e *AppError) IsFatal() bool {
	return e.fatal
}

// Code is used as the process exit code by the cli.
func (e *AppError) Code() int {
	return e.code
}

func (e *AppError) WithCode(code int) *AppError {
	e.code = code
	return e
}

func (e *AppError) Error() string {
	return e.message
}

func (e *AppError) FullError() string {
	message := e.message
	if e.basic != nil && e.basic.Error() != message {
		message = fmt.Sprintf("%s (%s)", message, e.basic.Error())
	}
	if e.stack != "" {
		message = fmt.Sprintf("%s\n%s", message, e.stack)
	}
	return message
}

func (e *AppError) IsBasic() bool {
	return e.basic != nil
}

func (e *AppError) Stack() string {
	return e.stack
}

func (e *AppError) Unwrap() error {
	return e.basic
}

func Wrap(err any) *AppError {
	if e, ok := err.(*AppError); ok {
		return e
	}
	return New(err)
}

func Sprintf(format string, v ...any) *AppError {
	return New(fmt.Sprintf(format, v...))
}

func NewX(vals ...any) *AppError {
	return New(vals...).Fatal()
}

// Code returns the code of the first AppError in err's chain.
func Code(err error) int {
	if err == nil {
		return 0
	}
	var e *AppError
	if errors.As(err, &e) {
		return e.code
	}
	return DefaultErrCode
}

func IsAppError(err any) bool {
	_, ok := err.(*AppError)
	return ok
}
