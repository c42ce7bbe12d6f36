package interfaces

import "errors"

// ErrConditionFailed is returned by repositories when a conditional write lost against the
// current stored state (status moved, payment already linked, cart no longer active).
var ErrConditionFailed = errors.New("conditional write failed")
