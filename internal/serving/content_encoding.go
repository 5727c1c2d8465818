package serving

import (
	"net/http"
	"os"

	"gitlab.com/feistel/go-contentencoding/encoding"
)

// server side weights break ties between encodings the client accepts
// equally, smaller files first
var compressedEncodings = map[string]struct {
	extension string
	weight    encoding.Weight
}{
	encoding.Brotli: {extension: ".br", weight: 1.0},
	encoding.Gzip:   {extension: ".gz", weight: 0.9},
}

const identityWeight = encoding.Weight(0.1)

// handleContentEncoding picks the pre-compressed sibling of name, such as
// dag.js.br, that the client accepts. It returns name and fi untouched when
// there is none.
func (d *Dispatcher) handleContentEncoding(w http.ResponseWriter, r *http.Request, name string, fi os.FileInfo) (string, os.FileInfo) {
	acceptHeader := r.Header.Get("Accept-Encoding")

	// compressed content can not serve byte ranges of the original file
	if acceptHeader == "" || r.Header.Get("Range") != "" {
		return name, fi
	}

	files := map[string]os.FileInfo{}
	pref := encoding.Preference{encoding.Identity: identityWeight}
	for enc, variant := range compressedEncodings {
		// Lstat does not follow the last component, a symlinked variant is
		// never served
		cfi, err := d.root.Lstat(r.Context(), name+variant.extension)
		if err != nil || !cfi.Mode().IsRegular() {
			continue
		}

		files[enc] = cfi
		pref[enc] = variant.weight
	}

	if len(files) == 0 {
		return name, fi
	}

	accepted, err := pref.Negotiate(acceptHeader, encoding.AliasIdentity)
	if err != nil || len(accepted) == 0 {
		return name, fi
	}

	// the response differs by Accept-Encoding even when identity wins
	w.Header().Add("Vary", "Accept-Encoding")

	contentEncoding := accepted[0]
	variantFi, ok := files[contentEncoding]
	if !ok {
		return name, fi
	}

	w.Header().Set("Content-Encoding", contentEncoding)

	return name + compressedEncodings[contentEncoding].extension, variantFi
}
