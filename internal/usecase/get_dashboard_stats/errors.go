package get_dashboard_stats

import "errors"

// ErrInternal is returned on storage failures.
var ErrInternal = errors.New("get_dashboard_stats: internal error")
