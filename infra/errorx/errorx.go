package errorx

import (
	"errors"
	"fmt"

	"unitroot/infra/errorx/errCode"
)

// 带错误码的错误, 调用方用 IsCode 区分三类数值错误
type Error struct {
	Code errCode.Code
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Msg)
}

func New(code errCode.Code, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

func Newf(code errCode.Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// CodeOf 提取错误码, 非 errorx 错误返回 0
func CodeOf(err error) errCode.Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return 0
}

func IsCode(err error, code errCode.Code) bool {
	return CodeOf(err) == code
}
