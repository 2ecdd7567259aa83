package log

import (
	"time"

	"go.uber.org/zap"
)

// HTTPLogger logs outgoing HTTP calls made through pkg/http clients.
type HTTPLogger struct {
	Client string
}

func (l HTTPLogger) LogResponseSuccess(method, url string, httpStatus int, latency time.Duration) {
	logger.Debug("http request finished",
		zap.String("client", l.Client),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Duration("latency", latency))
}

func (l HTTPLogger) LogResponseError(method, url string, httpStatus int, latency time.Duration, err error) {
	logger.Warn("http request failed",
		zap.String("client", l.Client),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Duration("latency", latency),
		zap.Error(err))
}

func (l HTTPLogger) LogRequestRetry(method, url string, httpStatus int, err error, retryCount, maxRetries int) {
	logger.Warn("http request retry",
		zap.String("client", l.Client),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int("retry", retryCount),
		zap.Int("max_retries", maxRetries),
		zap.Error(err))
}
