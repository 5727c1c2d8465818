package config

import (
	"errors"
	"strings"
)

var errEmptyListEntry = errors.New("value must list at least one entry")

const defaultListSeparator = ","

// ListFlag collects the entries of a flag that may be repeated on the
// command line. The environment and config files can only set a flag once,
// there the entries are joined by the separator:
//
//	-listen-http 0.0.0.0:8080 -listen-http [::]:8080
//	LISTEN_HTTP=0.0.0.0:8080,[::]:8080
//	HEADER="X-Frame-Options: DENY;;Content-Security-Policy: default-src 'self'"
//
// Entries are trimmed and empty ones are skipped.
type ListFlag struct {
	entries   []string
	separator string
}

// String returns the entries joined by the separator
func (l *ListFlag) String() string {
	return strings.Join(l.entries, l.sep())
}

// Set appends the entries of value
func (l *ListFlag) Set(value string) error {
	var added []string
	for _, entry := range strings.Split(value, l.sep()) {
		if entry = strings.TrimSpace(entry); entry != "" {
			added = append(added, entry)
		}
	}

	if len(added) == 0 {
		return errEmptyListEntry
	}

	l.entries = append(l.entries, added...)

	return nil
}

// Entries returns a copy of every entry in the order they were set
func (l *ListFlag) Entries() []string {
	return append([]string(nil), l.entries...)
}

func (l *ListFlag) Len() int {
	return len(l.entries)
}

func (l *ListFlag) sep() string {
	if l.separator == "" {
		return defaultListSeparator
	}

	return l.separator
}
