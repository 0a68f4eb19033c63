package findbugs

import (
	"errors"
)

var (
	// ErrInvalidArgument is returned when a reporter is built without a
	// required collaborator.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrReportClosed is returned when a finished report is finished again.
	ErrReportClosed = errors.New("report already finished")
)
