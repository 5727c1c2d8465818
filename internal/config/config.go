package config

import (
	"fmt"
	"time"

	"github.com/namsral/flag"
	log "github.com/sirupsen/logrus"
)

// DefaultListenHTTP is used when no listener is configured
const DefaultListenHTTP = "0.0.0.0:8080"

// Config stores all the config options relevant to dagmap.
type Config struct {
	General   General
	Listeners Listeners
	Log       Log
	Sentry    Sentry
	Server    Server
	Graph     Graph
}

// General groups settings that are general to dagmap and can not
// be categorized under other head.
type General struct {
	WebRoot        string
	MaxConns       int
	MaxURILength   int
	MetricsAddress string
	StatusPath     string
	HTTP2          bool
	Compress       bool

	DisableCrossOriginRequests bool
	PropagateCorrelationID     bool

	ShowVersion bool

	CustomHeaders []string
}

// Listeners groups the addresses to listen on. Proxyv2 listeners expect
// every connection to start with a PROXY protocol v2 header.
type Listeners struct {
	HTTP    ListFlag
	Proxyv2 ListFlag
}

// Log groups settings related to configuring logging
type Log struct {
	Format  string
	Verbose bool
}

// Sentry groups settings related to configuring Sentry
type Sentry struct {
	DSN         string
	Environment string
}

// Server groups the HTTP server timeouts
type Server struct {
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	KeepAlive         time.Duration
	ShutdownTimeout   time.Duration
}

// MaxGraphBodySize bounds graph-max-body-size, task maps are read in memory
const MaxGraphBodySize = 1 << 30

// Graph groups settings of the task map API. A zero RateLimit disables
// the source IP rate limiter.
type Graph struct {
	MaxBodySize int64
	RateLimit   float64
	RateBurst   int
}

func loadConfig() (*Config, error) {
	config := &Config{
		General: General{
			MaxConns:                   *maxConns,
			MaxURILength:               *maxURILength,
			MetricsAddress:             *metricsAddress,
			StatusPath:                 *statusPath,
			HTTP2:                      *useHTTP2,
			Compress:                   *compress,
			DisableCrossOriginRequests: *disableCrossOriginRequests,
			PropagateCorrelationID:     *propagateCorrelationID,
			ShowVersion:                *showVersion,
			CustomHeaders:              header.Entries(),
		},
		Listeners: Listeners{
			HTTP:    listenHTTP,
			Proxyv2: listenProxyv2,
		},
		Log: Log{
			Format:  *logFormat,
			Verbose: *logVerbose,
		},
		Sentry: Sentry{
			DSN:         *sentryDSN,
			Environment: *sentryEnvironment,
		},
		Server: Server{
			ReadTimeout:       *serverReadTimeout,
			ReadHeaderTimeout: *serverReadHeaderTimeout,
			WriteTimeout:      *serverWriteTimeout,
			KeepAlive:         *serverKeepAlive,
			ShutdownTimeout:   *serverShutdownTimeout,
		},
		Graph: Graph{
			MaxBodySize: *graphMaxBodySize,
			RateLimit:   *graphRateLimit,
			RateBurst:   *graphRateBurst,
		},
	}

	if config.Listeners.HTTP.Len() == 0 && config.Listeners.Proxyv2.Len() == 0 {
		config.Listeners.HTTP = ListFlag{entries: []string{DefaultListenHTTP}}
	}

	webRoot, err := ResolveWebRoot(*webRootPath)
	if err != nil {
		return nil, fmt.Errorf("resolving web root: %w", err)
	}
	config.General.WebRoot = webRoot

	// -version exits before anything else is checked
	if config.General.ShowVersion {
		return config, nil
	}

	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// LogConfig logs the effective configuration at debug level
func LogConfig(config *Config) {
	log.WithFields(log.Fields{
		"default-config-filename":          flag.DefaultConfigFlagname,
		"compress":                         config.General.Compress,
		"disable-cross-origin-requests":    config.General.DisableCrossOriginRequests,
		"graph-max-body-size":              config.Graph.MaxBodySize,
		"graph-rate-limit-source-ip":       config.Graph.RateLimit,
		"graph-rate-limit-source-ip-burst": config.Graph.RateBurst,
		"header":                           len(config.General.CustomHeaders),
		"listen-http":                      config.Listeners.HTTP.Entries(),
		"listen-proxyv2":                   config.Listeners.Proxyv2.Entries(),
		"log-format":                       config.Log.Format,
		"log-verbose":                      config.Log.Verbose,
		"max-conns":                        config.General.MaxConns,
		"max-uri-length":                   config.General.MaxURILength,
		"metrics-address":                  config.General.MetricsAddress,
		"propagate-correlation-id":         config.General.PropagateCorrelationID,
		"sentry-environment":               config.Sentry.Environment,
		"server-read-timeout":              config.Server.ReadTimeout,
		"server-read-header-timeout":       config.Server.ReadHeaderTimeout,
		"server-write-timeout":             config.Server.WriteTimeout,
		"server-keep-alive":                config.Server.KeepAlive,
		"server-shutdown-timeout":          config.Server.ShutdownTimeout,
		"status-path":                      config.General.StatusPath,
		"use-http2":                        config.General.HTTP2,
		"web-root":                         config.General.WebRoot,
	}).Debug("Start dagmap with configuration")
}

// LoadConfig parses configuration settings passed as command line arguments,
// environment variables or via config file, and populates a Config object
// with those values
func LoadConfig() (*Config, error) {
	initFlags()

	return loadConfig()
}
