package audit

import "errors"

// Directory-level failures abort a run; ErrInvalidTimestamp is returned
// by FormatTimestamp for values the report layout cannot represent.
var (
	ErrDirectoryNotFound = errors.New("directory not found")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrInvalidTimestamp  = errors.New("invalid timestamp")
)
