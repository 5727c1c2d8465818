package netutil

import (
	"errors"
	"net"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var errKeepaliveNotSupported = errors.New("keepalive not supported")

// Limiter is a pool of connection slots. The HTTP and proxyv2 listeners of
// dagmap draw from the same Limiter, so -max-conns bounds them together.
type Limiter struct {
	slots      chan struct{}
	concurrent prometheus.Gauge
	waiting    prometheus.Gauge
}

// NewLimiterWithMetrics creates a Limiter of n slots. maxConns is set to n,
// concurrent and waiting follow the open and queued connections.
func NewLimiterWithMetrics(n int, maxConns, concurrent, waiting prometheus.Gauge) *Limiter {
	maxConns.Set(float64(n))

	return &Limiter{
		slots:      make(chan struct{}, n),
		concurrent: concurrent,
		waiting:    waiting,
	}
}

// acquire blocks until a slot is free or done is closed
func (l *Limiter) acquire(done <-chan struct{}) bool {
	l.waiting.Inc()
	defer l.waiting.Dec()

	select {
	case <-done:
		return false
	case l.slots <- struct{}{}:
		l.concurrent.Inc()
		return true
	}
}

func (l *Limiter) release() {
	<-l.slots
	l.concurrent.Dec()
}

// SharedLimitListener returns a Listener that accepts a connection only once
// limiter has a free slot. The slot is given back when the connection is
// closed.
func SharedLimitListener(listener net.Listener, limiter *Limiter) net.Listener {
	return &sharedLimitListener{
		Listener: listener,
		limiter:  limiter,
		done:     make(chan struct{}),
	}
}

type sharedLimitListener struct {
	net.Listener
	limiter   *Limiter
	closeOnce sync.Once
	// closed by Close, wakes up an Accept waiting for a slot
	done chan struct{}
}

func (l *sharedLimitListener) Accept() (net.Conn, error) {
	acquired := l.limiter.acquire(l.done)

	// without a slot the listener is closed and Accept fails right away
	c, err := l.Listener.Accept()
	if err != nil {
		if acquired {
			l.limiter.release()
		}
		return nil, err
	}

	conn := &limitedConn{Conn: c, limiter: l.limiter}
	conn.tcpConn, _ = c.(*net.TCPConn)

	return conn, nil
}

func (l *sharedLimitListener) Close() error {
	err := l.Listener.Close()
	l.closeOnce.Do(func() { close(l.done) })

	return err
}

// limitedConn holds a slot of limiter until it is closed. Keep-alive is
// passed through to TCP connections so the server can still configure it.
type limitedConn struct {
	net.Conn
	tcpConn     *net.TCPConn
	limiter     *Limiter
	releaseOnce sync.Once
}

func (c *limitedConn) Close() error {
	err := c.Conn.Close()
	c.releaseOnce.Do(c.limiter.release)

	return err
}

func (c *limitedConn) SetKeepAlive(enabled bool) error {
	if c.tcpConn == nil {
		return errKeepaliveNotSupported
	}

	return c.tcpConn.SetKeepAlive(enabled)
}

func (c *limitedConn) SetKeepAlivePeriod(period time.Duration) error {
	if c.tcpConn == nil {
		return errKeepaliveNotSupported
	}

	return c.tcpConn.SetKeepAlivePeriod(period)
}
