package config

import (
	"testing"

	"github.com/namsral/flag"
	"github.com/stretchr/testify/require"
)

func TestListFlagSet(t *testing.T) {
	tests := map[string]struct {
		separator       string
		values          []string
		expectedEntries []string
		expectedErr     error
	}{
		"repeated listener": {
			values:          []string{"0.0.0.0:8080", "[::]:8080"},
			expectedEntries: []string{"0.0.0.0:8080", "[::]:8080"},
		},
		"joined listeners": {
			values:          []string{"0.0.0.0:8080, [::]:8080"},
			expectedEntries: []string{"0.0.0.0:8080", "[::]:8080"},
		},
		"empty entries are skipped": {
			values:          []string{"0.0.0.0:8080,,[::]:8080,"},
			expectedEntries: []string{"0.0.0.0:8080", "[::]:8080"},
		},
		"headers keep their commas": {
			separator: ";;",
			values:    []string{"X-Frame-Options: DENY;;Content-Security-Policy: default-src 'self', script-src 'self'"},
			expectedEntries: []string{
				"X-Frame-Options: DENY",
				"Content-Security-Policy: default-src 'self', script-src 'self'",
			},
		},
		"empty value": {
			values:      []string{""},
			expectedErr: errEmptyListEntry,
		},
		"only separators": {
			values:      []string{" , "},
			expectedErr: errEmptyListEntry,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := ListFlag{separator: tt.separator}

			var err error
			for _, value := range tt.values {
				if err = l.Set(value); err != nil {
					break
				}
			}

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				require.Zero(t, l.Len())
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expectedEntries, l.Entries())
			require.Equal(t, len(tt.expectedEntries), l.Len())
		})
	}
}

func TestListFlagEntriesIsACopy(t *testing.T) {
	l := ListFlag{entries: []string{DefaultListenHTTP}}

	entries := l.Entries()
	entries[0] = "127.0.0.1:1"

	require.Equal(t, []string{DefaultListenHTTP}, l.Entries())
	require.Equal(t, DefaultListenHTTP, l.String())
}

func TestListFlagFromEnvironment(t *testing.T) {
	var listenHTTP, header ListFlag
	header.separator = ";;"

	fs := flag.NewFlagSet("dagmap", flag.ContinueOnError)
	fs.Var(&listenHTTP, "listen-http", "")
	fs.Var(&header, "header", "")

	require.NoError(t, fs.ParseEnv([]string{
		"LISTEN_HTTP=0.0.0.0:8080,[::]:8080",
		"HEADER=X-Frame-Options: DENY;;Referrer-Policy: no-referrer",
	}))

	require.Equal(t, []string{"0.0.0.0:8080", "[::]:8080"}, listenHTTP.Entries())
	require.Equal(t, []string{"X-Frame-Options: DENY", "Referrer-Policy: no-referrer"}, header.Entries())
}

func TestListFlagCommandLineWinsOverEnvironment(t *testing.T) {
	var listenHTTP ListFlag

	fs := flag.NewFlagSet("dagmap", flag.ContinueOnError)
	fs.Var(&listenHTTP, "listen-http", "")

	require.NoError(t, fs.Parse([]string{"-listen-http", "127.0.0.1:8080", "-listen-http", "127.0.0.1:8081"}))
	require.NoError(t, fs.ParseEnv([]string{"LISTEN_HTTP=0.0.0.0:9090"}))

	require.Equal(t, []string{"127.0.0.1:8080", "127.0.0.1:8081"}, listenHTTP.Entries())
}
