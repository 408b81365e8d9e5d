package connect

import "errors"

var (
	ErrParsingConfig            = errors.New("failed to parse connection config")
	ErrEmptyDSN                 = errors.New("empty connection string, use SQLREST_DSN env var")
	ErrUnknownDriver            = errors.New("unknown driver")
	ErrFailedToOpenDBConnection = errors.New("failed to open db connection")
	ErrHealthcheckFailed        = errors.New("healthcheck failed, connection is not available")
)
