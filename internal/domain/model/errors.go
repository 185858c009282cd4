package model

import "errors"

// Failure kinds. Components wrap these with fmt.Errorf("%w") so callers classify with errors.Is.
var (
	ErrConfigurationMissing = errors.New("configuration missing")
	ErrUpstreamUnavailable  = errors.New("upstream unavailable")
	ErrMalformedPayload     = errors.New("malformed payload")
	ErrNoData               = errors.New("no data")
)

// Pipeline stages that failed, used by the invocation handlers to pick a response.
var (
	ErrFetchFailed  = errors.New("unable to retrieve external data")
	ErrStoreFailed  = errors.New("failed to save data to database")
	ErrReadFailed   = errors.New("failed to read data from database")
	ErrUploadFailed = errors.New("failed to write export to object storage")
)
