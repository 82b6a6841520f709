package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind دسته‌بندی خطا برای تبدیل به وضعیت HTTP
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindAuthorization
	KindNotFound
	KindUpload
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindUpload:
		return "upload"
	default:
		return "unknown"
	}
}

// Status وضعیت HTTP متناظر با هر دسته
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error خطای دامنه با پیام قابل نمایش به کاربر
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Authorization(format string, args ...any) *Error {
	return &Error{Kind: KindAuthorization, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Upload خطای سرویس میزبانی تصویر
func Upload(err error, message string) *Error {
	return &Error{Kind: KindUpload, Message: message, Err: err}
}

// Wrap خطای ناشناخته را با حفظ پیام اصلی بسته‌بندی می‌کند
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return &Error{Kind: KindUnknown, Message: err.Error(), Err: err}
}

// KindOf دسته خطا را برمی‌گرداند؛ برای خطاهای غیردامنه‌ای KindUnknown
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
