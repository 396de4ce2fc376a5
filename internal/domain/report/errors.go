package report

import "errors"

// Report domain errors
var (
	ErrUnknownReportType = errors.New("unknown report type")
	ErrGenerationFailed  = errors.New("report generation failed")
)
