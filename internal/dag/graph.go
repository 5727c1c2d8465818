package dag

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrCyclic is returned by Build when the task map contains a dependency cycle
var ErrCyclic = errors.New("the graph has cycles so it can't be visualized as a Sankey diagram")

// defaultMass is given to every link when no link in the graph has an effort
const defaultMass = 1.0

// Node is a task of the Sankey diagram
type Node struct {
	Name string `json:"name"`
}

// Metadata holds the effort estimate of a link and the mass derived from it
type Metadata struct {
	Effort      int     `json:"effort,omitempty"`
	Uncertainty float64 `json:"uncertainty,omitempty"`
	Mass        float64 `json:"mass"`
}

// Link flows from Source to Target. Value is the mass of the link plus all
// the mass flowing into its source.
type Link struct {
	Source   string   `json:"source"`
	Target   string   `json:"target"`
	Value    float64  `json:"value"`
	Metadata Metadata `json:"metadata"`
}

// Graph is the input of a Sankey diagram layout
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// Build turns the parsed edges into a Sankey graph. It fails with an error
// wrapping ErrCyclic if the dependencies contain a cycle.
func Build(edges []Edge) (*Graph, error) {
	g := &Graph{
		Nodes: []Node{},
		Links: make([]Link, 0, len(edges)),
	}

	seen := make(map[string]bool)
	addNode := func(name string) {
		if !seen[name] {
			seen[name] = true
			g.Nodes = append(g.Nodes, Node{Name: name})
		}
	}

	for _, e := range edges {
		addNode(e.Source)
		addNode(e.Target)

		g.Links = append(g.Links, Link{
			Source:   e.Source,
			Target:   e.Target,
			Metadata: metadataFor(e),
		})
	}

	fillMissingMass(g.Links)

	order, err := g.topologicalOrder()
	if err != nil {
		return nil, err
	}

	g.accumulate(order)

	return g, nil
}

// metadataFor computes the mass of an edge. It is left at zero when the edge
// has no effort and is filled in later by fillMissingMass.
func metadataFor(e Edge) Metadata {
	md := Metadata{Effort: e.Effort, Uncertainty: e.Uncertainty}
	if e.Effort > 0 {
		md.Mass = float64(e.Effort)
		if e.Uncertainty > 0 {
			md.Mass += float64(e.Effort) * e.Uncertainty
		}
	}

	return md
}

func fillMissingMass(links []Link) {
	var masses []float64
	for _, l := range links {
		if l.Metadata.Effort > 0 {
			masses = append(masses, l.Metadata.Mass)
		}
	}

	fill := defaultMass
	if len(masses) > 0 {
		fill = median(masses)
	}

	for i := range links {
		if links[i].Metadata.Effort == 0 {
			links[i].Metadata.Mass = fill
		}
	}
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	half := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[half]
	}

	return (sorted[half-1] + sorted[half]) / 2
}

// topologicalOrder returns the node names so that every link goes from an
// earlier node to a later one. Ties keep the order in which nodes were seen.
func (g *Graph) topologicalOrder() ([]string, error) {
	inDegree := make(map[string]int, len(g.Nodes))
	outgoing := make(map[string][]string, len(g.Nodes))

	for _, l := range g.Links {
		inDegree[l.Target]++
		outgoing[l.Source] = append(outgoing[l.Source], l.Target)
	}

	var queue []string
	for _, n := range g.Nodes {
		if inDegree[n.Name] == 0 {
			queue = append(queue, n.Name)
		}
	}

	order := make([]string, 0, len(g.Nodes))
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		order = append(order, name)

		for _, target := range outgoing[name] {
			inDegree[target]--
			if inDegree[target] == 0 {
				queue = append(queue, target)
			}
		}
	}

	if len(order) != len(g.Nodes) {
		var cyclic []string
		for _, n := range g.Nodes {
			if inDegree[n.Name] > 0 {
				cyclic = append(cyclic, n.Name)
			}
		}

		return nil, fmt.Errorf("%w: %s", ErrCyclic, strings.Join(cyclic, ", "))
	}

	return order, nil
}

// accumulate sets the value of every link walking the nodes in topological
// order, so the inflow of a source is final before its outgoing links are set.
func (g *Graph) accumulate(order []string) {
	bySource := make(map[string][]int, len(g.Nodes))
	for i, l := range g.Links {
		bySource[l.Source] = append(bySource[l.Source], i)
	}

	inflow := make(map[string]float64, len(g.Nodes))
	for _, name := range order {
		for _, i := range bySource[name] {
			l := &g.Links[i]
			l.Value = l.Metadata.Mass + inflow[name]
			inflow[l.Target] += l.Value
		}
	}
}
