package customheaders

import (
	"bufio"
	"errors"
	"fmt"
	"net/http"
	"net/textproto"
	"strings"
)

var (
	errInvalidHeaderParameter = errors.New("invalid syntax specified as header parameter")
	errReservedHeader         = errors.New("header is set per response")
)

// defaultHeaders are sent with every response unless -header names them.
// Browsers must not second guess the type of a served file.
var defaultHeaders = http.Header{
	"X-Content-Type-Options": []string{"nosniff"},
}

// reservedHeaders describe a single response of the file dispatcher or of
// the graph API, a fixed value would contradict the body
var reservedHeaders = map[string]struct{}{
	"Cache-Control":    {},
	"Content-Encoding": {},
	"Content-Length":   {},
	"Content-Range":    {},
	"Content-Type":     {},
	"Etag":             {},
	"Expires":          {},
	"Last-Modified":    {},
	"Vary":             {},
}

// Parse turns "Name: value" strings into the headers sent with every
// response, starting from the defaults. A configured header replaces the
// default of the same name, repeated names keep every value.
func Parse(customHeaders []string) (http.Header, error) {
	configured := http.Header{}
	for _, keyValueString := range customHeaders {
		tp := textproto.NewReader(bufio.NewReader(strings.NewReader(strings.TrimSpace(keyValueString) + "\n\n")))
		keyValue, err := tp.ReadMIMEHeader()
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errInvalidHeaderParameter, keyValueString)
		}

		for k, v := range keyValue {
			k = textproto.CanonicalMIMEHeaderKey(strings.TrimSpace(k))
			if _, ok := reservedHeaders[k]; ok {
				return nil, fmt.Errorf("%w: %s", errReservedHeader, k)
			}

			configured[k] = append(configured[k], v...)
		}
	}

	headers := defaultHeaders.Clone()
	for k, v := range configured {
		headers[k] = v
	}

	return headers, nil
}

// setHeaders replaces every header of w named in headers
func setHeaders(w http.ResponseWriter, headers http.Header) {
	for k, v := range headers {
		w.Header()[k] = append([]string(nil), v...)
	}
}
