package report

import "errors"

// Sentinel errors for store operations.
var (
	ErrNotFound   = errors.New("report not found")
	ErrLoadFailed = errors.New("report load failed")
	ErrSaveFailed = errors.New("report save failed")
)
