package ports

import "errors"

// ErrNotFound را همه آداپترهای ذخیره‌سازی برای رکورد ناموجود برمی‌گردانند
var ErrNotFound = errors.New("record not found")
