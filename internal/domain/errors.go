package domain

import "errors"

// ErrReportNotFound is returned by report stores when no report has the
// requested id.
var ErrReportNotFound = errors.New("report not found")
