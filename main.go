package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"gitlab.com/dagmap/dagmap/internal/config"
	"gitlab.com/dagmap/dagmap/internal/errortracking"
	"gitlab.com/dagmap/dagmap/internal/logging"
	"gitlab.com/dagmap/dagmap/internal/vfs"
	"gitlab.com/dagmap/dagmap/internal/vfs/local"
	"gitlab.com/dagmap/dagmap/metrics"
)

// VERSION stores the information about the semantic version of application
var VERSION = "dev"

// REVISION stores the information about the git revision of application
var REVISION = "HEAD"

func appMain() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load config")
	}

	printVersion(cfg.General.ShowVersion, VERSION)

	if err := logging.ConfigureLogging(cfg.Log.Format, cfg.Log.Verbose); err != nil {
		log.WithError(err).Fatal("Failed to initialize logging")
	}

	if cfg.Sentry.DSN != "" {
		if err := errortracking.Initialize(cfg.Sentry.DSN, cfg.Sentry.Environment, fmt.Sprintf("%s-%s", VERSION, REVISION)); err != nil {
			log.WithError(err).Warn("Failed to initialize error tracking")
		}
	}

	log.WithFields(log.Fields{
		"version":  VERSION,
		"revision": REVISION,
	}).Print("dagmap")

	config.LogConfig(cfg)

	loadMIMETypes()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, err := vfs.Instrumented(&local.VFS{}).Root(ctx, cfg.General.WebRoot)
	if err != nil {
		capturingFatal(err, "could not open web root")
	}

	log.Printf("Serving files from %s", cfg.General.WebRoot)

	listeners, err := createListeners(cfg)
	if err != nil {
		capturingFatal(err, "could not create listeners")
	}

	a, err := newApp(cfg, root)
	if err != nil {
		closeListeners(listeners)
		capturingFatal(err, "could not build handler pipeline")
	}

	if err := a.Run(ctx, listeners); err != nil {
		capturingFatal(err, "server stopped")
	}

	log.Info("dagmap stopped")
}

// createListeners opens the sockets before any request is served so that
// a busy address fails the start instead of a background goroutine
func createListeners(config *config.Config) ([]listener, error) {
	var listeners []listener

	add := func(addrs []string, kind listenerKind) error {
		for _, addr := range addrs {
			l, err := net.Listen("tcp", addr)
			if err != nil {
				closeListeners(listeners)
				return fmt.Errorf("listen on %s: %w", addr, err)
			}

			log.WithFields(log.Fields{
				"listener": addr,
				"type":     kind,
			}).Debug("Set up listener")

			listeners = append(listeners, listener{Listener: l, kind: kind})
		}

		return nil
	}

	if err := add(config.Listeners.HTTP.Entries(), listenerHTTP); err != nil {
		return nil, err
	}
	if err := add(config.Listeners.Proxyv2.Entries(), listenerProxyv2); err != nil {
		return nil, err
	}
	if addr := config.General.MetricsAddress; addr != "" {
		if err := add([]string{addr}, listenerMetrics); err != nil {
			return nil, err
		}
	}

	return listeners, nil
}

func closeListeners(listeners []listener) {
	for _, l := range listeners {
		l.Close()
	}
}

func printVersion(showVersion bool, version string) {
	if showVersion {
		fmt.Fprintf(os.Stdout, "%s\n", version)
		os.Exit(0)
	}
}

func main() {
	log.SetOutput(os.Stderr)

	metrics.MustRegister()

	appMain()
}
