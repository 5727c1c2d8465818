package config

import (
	"time"

	"github.com/namsral/flag"
)

var (
	webRootPath    = flag.String("web-root", "", "The directory to serve files from (defaults to the web directory next to the executable)")
	useHTTP2       = flag.Bool("use-http2", true, "Enable cleartext HTTP/2 (h2c) support")
	compress       = flag.Bool("compress", true, "Compress responses with gzip or deflate when the client accepts it")
	statusPath     = flag.String("status-path", "/-/healthcheck", "The url path for a status page, empty to disable")
	metricsAddress = flag.String("metrics-address", "", "The address to listen on for metrics requests")

	sentryDSN              = flag.String("sentry-dsn", "", "The address for sending sentry crash reporting to")
	sentryEnvironment      = flag.String("sentry-environment", "", "The environment for sentry crash reporting")
	propagateCorrelationID = flag.Bool("propagate-correlation-id", true, "Reuse existing Correlation-ID from the incoming request header `X-Request-ID` if present")
	logFormat              = flag.String("log-format", "json", "The log output format: 'text' or 'json'")
	logVerbose             = flag.Bool("log-verbose", false, "Verbose logging")

	maxConns         = flag.Int("max-conns", 0, "Limit on the number of concurrent connections to the HTTP or proxyv2 listeners, 0 for no limit")
	maxURILength     = flag.Int("max-uri-length", 2048, "Limit the length of URI, 0 for unlimited.")
	graphMaxBodySize = flag.Int64("graph-max-body-size", 1<<20, "The maximum size of a task map sent to the graph API, in bytes")
	graphRateLimit   = flag.Float64("graph-rate-limit-source-ip", 5, "Rate limit per source IP for the graph API in number of requests per second, 0 means it is disabled")
	graphRateBurst   = flag.Int("graph-rate-limit-source-ip-burst", 20, "Rate limit per source IP maximum burst allowed for the graph API")

	// HTTP server timeouts
	serverReadTimeout       = flag.Duration("server-read-timeout", 5*time.Second, "ReadTimeout is the maximum duration for reading the entire request, including the body. A zero or negative value means there will be no timeout.")
	serverReadHeaderTimeout = flag.Duration("server-read-header-timeout", time.Second, "ReadHeaderTimeout is the amount of time allowed to read request headers. A zero or negative value means there will be no timeout.")
	serverWriteTimeout      = flag.Duration("server-write-timeout", 0, "WriteTimeout is the maximum duration before timing out writes of the response. A zero or negative value means there will be no timeout.")
	serverKeepAlive         = flag.Duration("server-keep-alive", 15*time.Second, "KeepAlive specifies the keep-alive period for network connections accepted by this listener. If zero, keep-alives are enabled if supported by the protocol and operating system. If negative, keep-alives are disabled.")
	serverShutdownTimeout   = flag.Duration("server-shutdown-timeout", 30*time.Second, "dagmap server shutdown timeout (default: 30s)")

	disableCrossOriginRequests = flag.Bool("disable-cross-origin-requests", false, "Disable cross-origin requests")

	showVersion = flag.Bool("version", false, "Show version")

	// See initFlags()
	listenHTTP    ListFlag
	listenProxyv2 ListFlag

	header = ListFlag{separator: ";;"}
)

// initFlags will be called from LoadConfig
func initFlags() {
	flag.Var(&listenHTTP, "listen-http", "The address(es) to listen on for HTTP requests (default 0.0.0.0:8080)")
	flag.Var(&listenProxyv2, "listen-proxyv2", "The address(es) to listen on for HTTP requests behind a PROXY protocol v2 load balancer (https://www.haproxy.org/download/1.8/doc/proxy-protocol.txt)")
	flag.Var(&header, "header", "The additional http header(s) that should be send to the client")

	// read from -config=/path/to/dagmap-config
	flag.String(flag.DefaultConfigFlagname, "", "path to config file")

	flag.Parse()
}
