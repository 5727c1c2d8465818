package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	ghandlers "github.com/gorilla/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"gitlab.com/gitlab-org/labkit/correlation"
	labmetrics "gitlab.com/gitlab-org/labkit/metrics"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"gitlab.com/dagmap/dagmap/internal/config"
	"gitlab.com/dagmap/dagmap/internal/customheaders"
	"gitlab.com/dagmap/dagmap/internal/handlers"
	"gitlab.com/dagmap/dagmap/internal/healthcheck"
	"gitlab.com/dagmap/dagmap/internal/logging"
	"gitlab.com/dagmap/dagmap/internal/netutil"
	"gitlab.com/dagmap/dagmap/internal/ratelimiter"
	"gitlab.com/dagmap/dagmap/internal/rejectmethods"
	"gitlab.com/dagmap/dagmap/internal/routing"
	"gitlab.com/dagmap/dagmap/internal/serving"
	"gitlab.com/dagmap/dagmap/internal/urilimiter"
	"gitlab.com/dagmap/dagmap/internal/vfs"
	"gitlab.com/dagmap/dagmap/metrics"
)

var (
	// the labkit collectors are registered once per process
	metricsFactoryOnce sync.Once
	metricsFactory     labmetrics.HandlerFactory
)

func metricsMiddleware(handler http.Handler) http.Handler {
	metricsFactoryOnce.Do(func() {
		metricsFactory = labmetrics.NewHandlerFactory(labmetrics.WithNamespace("dagmap"))
	})

	return metricsFactory(handler)
}

type theApp struct {
	config      *config.Config
	root        vfs.Root
	handler     http.Handler
	rateLimiter *ratelimiter.RateLimiter
}

func newApp(config *config.Config, root vfs.Root) (*theApp, error) {
	a := &theApp{config: config, root: root}

	handler, err := a.buildHandlerPipeline()
	if err != nil {
		return nil, err
	}

	if config.General.HTTP2 {
		handler = h2c.NewHandler(handler, &http2.Server{})
	}

	a.handler = handler

	return a, nil
}

// routingHandler dispatches requests that made it through the middlewares
func (a *theApp) routingHandler() http.Handler {
	dispatcher := serving.NewDispatcher(a.root)

	var graph http.Handler = handlers.NewGraph(a.config.Graph.MaxBodySize)
	if a.config.Graph.RateLimit > 0 {
		a.rateLimiter = ratelimiter.New(
			ratelimiter.WithSourceIPLimitPerSecond(a.config.Graph.RateLimit),
			ratelimiter.WithSourceIPBurstSize(a.config.Graph.RateBurst),
		)
		graph = a.rateLimiter.SourceIPLimiter(graph)
	}

	var handler http.Handler = routing.NewRouter(dispatcher, graph)
	if a.config.General.Compress {
		handler = ghandlers.CompressHandler(handler)
	}

	return handler
}

// buildHandlerPipeline wraps the router with the middlewares. The first
// one applied is the last one to see the request.
func (a *theApp) buildHandlerPipeline() (http.Handler, error) {
	handler := a.routingHandler()

	handler = ghandlers.RecoveryHandler(
		ghandlers.RecoveryLogger(log.StandardLogger()),
		ghandlers.PrintRecoveryStack(true),
	)(handler)

	handler = metricsMiddleware(handler)

	handler, err := logging.BasicAccessLogger(handler, a.config.Log.Format)
	if err != nil {
		return nil, err
	}

	var correlationOpts []correlation.InboundHandlerOption
	if a.config.General.PropagateCorrelationID {
		correlationOpts = append(correlationOpts, correlation.WithPropagation())
	}
	handler = correlation.InjectCorrelationID(handler, correlationOpts...)

	handler = handlers.CorsHandler(a.config, handler)

	handler = healthcheck.NewMiddleware(handler, a.config.General.StatusPath, a.root)

	headers, err := customheaders.Parse(a.config.General.CustomHeaders)
	if err != nil {
		return nil, err
	}
	handler = customheaders.NewMiddleware(handler, headers)

	handler = urilimiter.NewMiddleware(handler, a.config.General.MaxURILength)
	handler = rejectmethods.NewMiddleware(handler)

	return handler, nil
}

func (a *theApp) limiter() *netutil.Limiter {
	if a.config.General.MaxConns <= 0 {
		return nil
	}

	return netutil.NewLimiterWithMetrics(
		a.config.General.MaxConns,
		metrics.LimitListenerMaxConns,
		metrics.LimitListenerConcurrentConns,
		metrics.LimitListenerWaitingConns,
	)
}

// listenerConfig describes how connections accepted by l are handled.
// HTTP and proxyv2 listeners share one pool of connection slots.
func (a *theApp) listenerConfig(l listener, limiter *netutil.Limiter) listenerConfig {
	switch l.kind {
	case listenerMetrics:
		return listenerConfig{handler: promhttp.Handler()}
	case listenerProxyv2:
		// the PROXY header carries the client address, X-Forwarded-For is
		// set by the client and never trusted
		return listenerConfig{isProxyV2: true, limiter: limiter, handler: a.handler}
	default:
		return listenerConfig{limiter: limiter, handler: a.handler}
	}
}

// Run serves on every listener until ctx is cancelled or one of the servers
// fails, then shuts all of them down gracefully
func (a *theApp) Run(ctx context.Context, listeners []listener) error {
	if len(listeners) == 0 {
		return config.ErrNoListener
	}

	g, ctx := errgroup.WithContext(ctx)
	limiter := a.limiter()

	servers := make([]*http.Server, 0, len(listeners))
	for _, l := range listeners {
		cfg := a.listenerConfig(l, limiter)
		server := newServer(cfg.handler, a.config.Server)
		servers = append(servers, server)

		ln := wrapListener(l.Listener, a.config.Server.KeepAlive, cfg)

		log.WithFields(log.Fields{
			"listener": l.Addr().String(),
			"type":     l.kind,
		}).Info("Listening")

		g.Go(func() error {
			if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serving on %s: %w", ln.Addr(), err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		return a.shutdown(servers)
	})

	return g.Wait()
}

func (a *theApp) shutdown(servers []*http.Server) error {
	log.Info("Shutting down")

	if a.rateLimiter != nil {
		defer a.rateLimiter.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	var wg sync.WaitGroup
	errs := make(chan error, len(servers))

	for _, server := range servers {
		wg.Add(1)
		go func(server *http.Server) {
			defer wg.Done()
			if err := server.Shutdown(ctx); err != nil {
				errs <- err
			}
		}(server)
	}

	wg.Wait()
	close(errs)

	return <-errs
}
