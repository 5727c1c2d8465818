package main

import (
	"mime"
	"net"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/dagmap/dagmap/internal/config"
)

func TestLoadMIMETypes(t *testing.T) {
	loadMIMETypes()

	for ext, mimeType := range extraMIMETypes {
		require.Equal(t, mimeType, mime.TypeByExtension(ext), ext)
	}

	require.Contains(t, mime.TypeByExtension(".svg"), "image/svg+xml")
}

func TestCreateListeners(t *testing.T) {
	cfg := &config.Config{}
	require.NoError(t, cfg.Listeners.HTTP.Set("127.0.0.1:0,127.0.0.1:0"))
	require.NoError(t, cfg.Listeners.Proxyv2.Set("127.0.0.1:0"))
	cfg.General.MetricsAddress = "127.0.0.1:0"

	listeners, err := createListeners(cfg)
	require.NoError(t, err)
	defer closeListeners(listeners)

	var kinds []listenerKind
	for _, l := range listeners {
		kinds = append(kinds, l.kind)
	}
	require.Equal(t, []listenerKind{listenerHTTP, listenerHTTP, listenerProxyv2, listenerMetrics}, kinds)
}

func TestCreateListenersAddressInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := &config.Config{}
	require.NoError(t, cfg.Listeners.HTTP.Set("127.0.0.1:0"))
	require.NoError(t, cfg.Listeners.Proxyv2.Set(busy.Addr().String()))

	_, err = createListeners(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), busy.Addr().String())
}
