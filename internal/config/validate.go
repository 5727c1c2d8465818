package config

import (
	"errors"
	"fmt"
	"net"
	"os"

	"github.com/hashicorp/go-multierror"

	"gitlab.com/dagmap/dagmap/internal/customheaders"
)

var (
	ErrNoListener              = errors.New("no listener defined, please specify at least one --listen-* flag")
	ErrInvalidListenAddress    = errors.New("listen address must be of the form host:port")
	ErrInvalidLogFormat        = errors.New("log-format must be either 'text' or 'json'")
	ErrInvalidMaxConns         = errors.New("max-conns must be greater than or equal to 0")
	ErrInvalidMaxURILength     = errors.New("max-uri-length must be greater than or equal to 0")
	ErrInvalidGraphMaxBodySize = fmt.Errorf("graph-max-body-size must be greater than 0 and at most %d", MaxGraphBodySize)
	ErrInvalidGraphRateLimit   = errors.New("graph-rate-limit-source-ip must be greater than or equal to 0")
	ErrInvalidGraphRateBurst   = errors.New("graph-rate-limit-source-ip-burst must be greater than 0 when rate limiting is enabled")
	ErrInvalidShutdownTimeout  = errors.New("server-shutdown-timeout must be greater than or equal to 0")
	ErrInvalidCustomHeader     = errors.New("invalid custom header")
	ErrWebRootNotDirectory     = errors.New("web-root must be a directory")
)

// Validate checks the whole configuration and returns every problem found
func Validate(config *Config) error {
	var result *multierror.Error

	result = multierror.Append(result, validateListeners(config)...)
	result = multierror.Append(result, validateLimits(config)...)

	switch config.Log.Format {
	case "", "text", "json":
	default:
		result = multierror.Append(result, fmt.Errorf("%w: %q", ErrInvalidLogFormat, config.Log.Format))
	}

	if _, err := customheaders.Parse(config.General.CustomHeaders); err != nil {
		result = multierror.Append(result, fmt.Errorf("%w: %v", ErrInvalidCustomHeader, err))
	}

	if err := validateWebRoot(config.General.WebRoot); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

func validateListeners(config *Config) []error {
	addrs := append(config.Listeners.HTTP.Entries(), config.Listeners.Proxyv2.Entries()...)
	if len(addrs) == 0 {
		return []error{ErrNoListener}
	}

	var errs []error
	for _, addr := range addrs {
		if _, _, err := net.SplitHostPort(addr); err != nil {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidListenAddress, addr))
		}
	}

	return errs
}

func validateLimits(config *Config) []error {
	var errs []error

	if config.General.MaxConns < 0 {
		errs = append(errs, ErrInvalidMaxConns)
	}
	if config.General.MaxURILength < 0 {
		errs = append(errs, ErrInvalidMaxURILength)
	}
	if config.Graph.MaxBodySize <= 0 || config.Graph.MaxBodySize > MaxGraphBodySize {
		errs = append(errs, ErrInvalidGraphMaxBodySize)
	}
	if config.Graph.RateLimit < 0 {
		errs = append(errs, ErrInvalidGraphRateLimit)
	}
	if config.Graph.RateLimit > 0 && config.Graph.RateBurst <= 0 {
		errs = append(errs, ErrInvalidGraphRateBurst)
	}
	if config.Server.ShutdownTimeout < 0 {
		errs = append(errs, ErrInvalidShutdownTimeout)
	}

	return errs
}

func validateWebRoot(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("web-root: %w", err)
	}

	if !fi.IsDir() {
		return fmt.Errorf("%w: %q", ErrWebRootNotDirectory, path)
	}

	return nil
}
