package ratelimiter

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	testlog "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"gitlab.com/dagmap/dagmap/metrics"
)

const remoteAddr = "192.168.1.1"

var next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestSourceIPLimiterWithDifferentLimits(t *testing.T) {
	hook := testlog.NewGlobal()

	for tn, tc := range sharedTestCases {
		t.Run(tn, func(t *testing.T) {
			rl := New(
				WithNow(mockNow),
				WithSourceIPLimitPerSecond(tc.sourceIPLimit),
				WithSourceIPBurstSize(tc.sourceIPBurstSize),
			)
			t.Cleanup(rl.Stop)

			for i := 0; i < tc.reqNum; i++ {
				ww := httptest.NewRecorder()
				rr := httptest.NewRequest(http.MethodPost, "/api/graph", nil)
				rr.RemoteAddr = remoteAddr + ":41000"

				rl.SourceIPLimiter(next).ServeHTTP(ww, rr)
				res := ww.Result()

				if i < tc.sourceIPBurstSize {
					require.Equal(t, http.StatusNoContent, res.StatusCode, "req: %d failed", i)
					continue
				}

				// mockNow never moves so the bucket is never refilled
				require.Equal(t, http.StatusTooManyRequests, res.StatusCode, "req: %d failed", i)
				b, err := io.ReadAll(res.Body)
				require.NoError(t, err)
				res.Body.Close()

				require.Contains(t, string(b), "Too many requests.")
				assertSourceIPLog(t, remoteAddr, hook)
			}
		})
	}
}

func TestSourceIPLimiterDenyRequestsAfterBurst(t *testing.T) {
	hook := testlog.NewGlobal()

	tcs := map[string]struct {
		remoteAddr       string
		forwardedFor     func(i int) string
		expectedSourceIP string
	}{
		"direct": {
			remoteAddr:       remoteAddr,
			forwardedFor:     func(int) string { return "" },
			expectedSourceIP: remoteAddr,
		},
		"with port": {
			remoteAddr:       remoteAddr + ":41000",
			forwardedFor:     func(int) string { return "" },
			expectedSourceIP: remoteAddr,
		},
		"a new X-Forwarded-For on every request is ignored": {
			remoteAddr:       remoteAddr,
			forwardedFor:     func(i int) string { return fmt.Sprintf("172.16.123.%d", i) },
			expectedSourceIP: remoteAddr,
		},
	}

	for tn, tc := range tcs {
		t.Run(tn, func(t *testing.T) {
			rl := New(
				WithNow(mockNow),
				WithSourceIPLimitPerSecond(1),
				WithSourceIPBurstSize(1),
			)
			t.Cleanup(rl.Stop)

			handler := rl.SourceIPLimiter(next)

			blocked := testutil.ToFloat64(metrics.RateLimitSourceIPBlockedCount)

			for i := 0; i < 5; i++ {
				ww := httptest.NewRecorder()
				rr := httptest.NewRequest(http.MethodPost, "/api/graph", nil)
				if forwardedFor := tc.forwardedFor(i); forwardedFor != "" {
					rr.Header.Set(headerXForwardedFor, forwardedFor)
				}
				rr.RemoteAddr = tc.remoteAddr

				handler.ServeHTTP(ww, rr)
				res := ww.Result()

				if i == 0 {
					require.Equal(t, http.StatusNoContent, res.StatusCode)
					continue
				}

				// burst is 1 and limit is 1 per second, all subsequent requests should fail
				require.Equal(t, http.StatusTooManyRequests, res.StatusCode)
				assertSourceIPLog(t, tc.expectedSourceIP, hook)
			}

			require.Equal(t, blocked+4, testutil.ToFloat64(metrics.RateLimitSourceIPBlockedCount))
		})
	}
}

func assertSourceIPLog(t *testing.T, sourceIP string, hook *testlog.Hook) {
	t.Helper()

	require.NotNil(t, hook.LastEntry())
	require.Equal(t, sourceIP, hook.LastEntry().Data["source_ip"])

	hook.Reset()
}
