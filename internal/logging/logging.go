package logging

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"gitlab.com/gitlab-org/labkit/correlation"
	"gitlab.com/gitlab-org/labkit/log"
)

const (
	defaultFormat = "json"
	textFormat    = "text"
)

// ConfigureLogging initializes the system logger. -log-verbose goes down to
// trace, which includes every file system call of the web root.
func ConfigureLogging(format string, verbose bool) error {
	if format == "" {
		format = defaultFormat
	}

	level := "info"
	if verbose {
		level = "trace"
	}

	_, err := log.Initialize(
		log.WithFormatter(format),
		log.WithLogLevel(level),
	)

	return err
}

// getAccessLogger returns the standard logger for json logs. Text logs get
// a separate logger writing the combined format of web servers.
func getAccessLogger(format string) (*logrus.Logger, error) {
	if format != textFormat && format != "" {
		return logrus.StandardLogger(), nil
	}

	accessLogger := log.New()
	if _, err := log.Initialize(
		log.WithLogger(accessLogger),
		log.WithFormatter("combined"),
	); err != nil {
		return nil, err
	}

	return accessLogger, nil
}

// BasicAccessLogger logs every request handled by handler. The client
// address is the one of the connection, or of the PROXY header on proxyv2
// listeners; X-Forwarded-For is never trusted.
func BasicAccessLogger(handler http.Handler, format string) (http.Handler, error) {
	accessLogger, err := getAccessLogger(format)
	if err != nil {
		return nil, err
	}

	return log.AccessLogger(handler,
		log.WithExtraFields(extraFields),
		log.WithAccessLogger(accessLogger),
		log.WithXFFAllowed(func(string) bool { return false }),
	), nil
}

func extraFields(r *http.Request) log.Fields {
	return log.Fields{
		"correlation_id": correlation.ExtractFromContext(r.Context()),
		"dagmap_host":    r.Host,
	}
}

// LogRequest returns an entry carrying the correlation ID, method, host and
// path of r
func LogRequest(r *http.Request) *logrus.Entry {
	return log.WithFields(log.Fields{
		"correlation_id": correlation.ExtractFromContext(r.Context()),
		"method":         r.Method,
		"host":           r.Host,
		"path":           r.URL.Path,
	})
}
