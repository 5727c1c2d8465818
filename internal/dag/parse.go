package dag

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	itemPrefix    = "* "
	dependencySep = " > "
)

var (
	effortAndUncertaintyRegexp = regexp.MustCompile(`(.*)\s+\[(\d+)\|(\d+(\.\d+)?)\]`)
	effortRegexp               = regexp.MustCompile(`(.*)\s\[(\d+)\]`)
)

// Edge is a single dependency read from a task map. The task named Target
// depends on the task named Source.
type Edge struct {
	Source      string
	Target      string
	Effort      int
	Uncertainty float64
}

// Parse extracts the dependency edges from a markdown task list. Only list
// items of the form
//
//	* A > B
//	* A > B [23]
//	* A > B [23|1.5]
//
// are considered, anything else is ignored. `A > B` reads as "A depends on B".
func Parse(text string) []Edge {
	var edges []Edge

	for _, line := range strings.Split(text, "\n") {
		edge, ok := parseLine(strings.TrimSuffix(line, "\r"))
		if !ok {
			continue
		}

		edges = append(edges, edge)
	}

	return edges
}

func parseLine(line string) (Edge, bool) {
	if !strings.HasPrefix(line, itemPrefix) {
		return Edge{}, false
	}

	parts := strings.Split(strings.TrimSpace(line[len(itemPrefix):]), dependencySep)
	if len(parts) != 2 {
		return Edge{}, false
	}

	edge := Edge{
		Target: strings.TrimSpace(parts[0]),
		Source: strings.TrimSpace(parts[1]),
	}

	if strings.Contains(edge.Source, "[") && strings.Contains(edge.Source, "]") {
		if !edge.parseMetadata() {
			return Edge{}, false
		}
	}

	if edge.Source == "" || edge.Target == "" {
		return Edge{}, false
	}

	return edge, true
}

// parseMetadata strips the bracketed effort suffix from the source and
// records its values. It reports false when the suffix is malformed.
func (e *Edge) parseMetadata() bool {
	re := effortRegexp
	if strings.Contains(e.Source, "|") {
		re = effortAndUncertaintyRegexp
	}

	matches := re.FindStringSubmatch(e.Source)
	if matches == nil {
		return false
	}

	effort, err := strconv.Atoi(matches[2])
	if err != nil {
		return false
	}

	e.Source = strings.TrimSpace(matches[1])
	e.Effort = effort

	if re == effortAndUncertaintyRegexp {
		uncertainty, err := strconv.ParseFloat(matches[3], 64)
		if err != nil {
			return false
		}

		e.Uncertainty = uncertainty
	}

	return true
}
