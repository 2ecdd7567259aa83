package http

import "time"

// HTTPLogger receives the outcome of every request sent by a Client.
type HTTPLogger interface {
	// LogResponseSuccess is called after a 2xx response
	LogResponseSuccess(method, url string, httpStatus int, latency time.Duration)

	// LogResponseError is called after a transport failure or a non 2xx response
	LogResponseError(method, url string, httpStatus int, latency time.Duration, err error)

	// LogRequestRetry is called before a retry attempt is made
	LogRequestRetry(method, url string, httpStatus int, err error, retryCount, maxRetries int)
}
