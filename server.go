package main

import (
	"net"
	"net/http"
	"time"

	proxyproto "github.com/pires/go-proxyproto"

	"gitlab.com/dagmap/dagmap/internal/config"
	"gitlab.com/dagmap/dagmap/internal/netutil"
)

type listenerKind string

const (
	listenerHTTP    listenerKind = "http"
	listenerProxyv2 listenerKind = "proxyv2"
	listenerMetrics listenerKind = "metrics"
)

type listener struct {
	net.Listener
	kind listenerKind
}

type keepAliveListener struct {
	net.Listener
	period time.Duration
}

type keepAliveSetter interface {
	SetKeepAlive(bool) error
	SetKeepAlivePeriod(time.Duration) error
}

type listenerConfig struct {
	isProxyV2 bool
	limiter   *netutil.Limiter
	handler   http.Handler
}

func (ln *keepAliveListener) Accept() (net.Conn, error) {
	conn, err := ln.Listener.Accept()
	if err != nil {
		return nil, err
	}

	if kc, ok := conn.(keepAliveSetter); ok {
		kc.SetKeepAlive(true)
		kc.SetKeepAlivePeriod(ln.period)
	}

	return conn, nil
}

func newServer(handler http.Handler, config config.Server) *http.Server {
	return &http.Server{
		Handler:           handler,
		ReadTimeout:       config.ReadTimeout,
		ReadHeaderTimeout: config.ReadHeaderTimeout,
		WriteTimeout:      config.WriteTimeout,
		IdleTimeout:       config.KeepAlive,
	}
}

// wrapListener layers connection limiting, keep-alive and the PROXY protocol
// on top of an already bound listener
func wrapListener(l net.Listener, keepAlive time.Duration, config listenerConfig) net.Listener {
	if config.limiter != nil {
		l = netutil.SharedLimitListener(l, config.limiter)
	}

	if keepAlive > 0 {
		l = &keepAliveListener{Listener: l, period: keepAlive}
	}

	if config.isProxyV2 {
		l = &proxyproto.Listener{
			Listener: l,
			Policy: func(upstream net.Addr) (proxyproto.Policy, error) {
				return proxyproto.REQUIRE, nil
			},
		}
	}

	return l
}
