package types

import "errors"

var (
	ErrMalformedProfile        = errors.New("malformed parameter profile")
	ErrInvalidParameters       = errors.New("invalid parameters")
	ErrUnknownParameter        = errors.New("unknown parameter")
	ErrUnsupportedReportType   = errors.New("unsupported report type")
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
)
