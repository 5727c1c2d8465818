package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"

	"gitlab.com/dagmap/dagmap/internal/dag"
	"gitlab.com/dagmap/dagmap/internal/httperrors"
	"gitlab.com/dagmap/dagmap/internal/logging"
	"gitlab.com/dagmap/dagmap/metrics"
)

const (
	outcomeSuccess  = "success"
	outcomeCyclic   = "cyclic"
	outcomeTooLarge = "too_large"
	outcomeError    = "error"
)

type errorResponse struct {
	Error string `json:"error"`
}

// Graph converts the markdown task map sent as the request body into the
// JSON nodes and links of a Sankey diagram
type Graph struct {
	maxBodySize int64
}

// NewGraph returns a Graph handler accepting task maps of up to maxBodySize bytes
func NewGraph(maxBodySize int64) *Graph {
	return &Graph{maxBodySize: maxBodySize}
}

func (g *Graph) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// one byte more than allowed tells a body at the limit from a larger one
	readLimit := g.maxBodySize
	if readLimit < math.MaxInt64 {
		readLimit++
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, readLimit))
	if err != nil {
		metrics.GraphRequests.WithLabelValues(outcomeError).Inc()
		logging.LogRequest(r).WithError(err).Warn("could not read task map")
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "could not read task map"})
		return
	}

	if int64(len(body)) > g.maxBodySize {
		metrics.GraphRequests.WithLabelValues(outcomeTooLarge).Inc()
		httperrors.Serve413(w)
		return
	}

	graph, err := dag.Build(dag.Parse(string(body)))
	if errors.Is(err, dag.ErrCyclic) {
		metrics.GraphRequests.WithLabelValues(outcomeCyclic).Inc()
		writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	} else if err != nil {
		metrics.GraphRequests.WithLabelValues(outcomeError).Inc()
		httperrors.Serve500WithRequest(w, r, "could not build graph", err)
		return
	}

	metrics.GraphRequests.WithLabelValues(outcomeSuccess).Inc()
	writeJSON(w, r, http.StatusOK, graph)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.LogRequest(r).WithError(err).Error("could not write JSON response")
	}
}
