package graph

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aretw0/arkhe/pkg/domain"
)

// NodeView is the type-independent view of a node used for rendering.
type NodeView struct {
	ID         string
	StateSpace string
	Value      string
	Coherence  float64
}

// GraphOverlay marks nodes to highlight on the diagram.
type GraphOverlay struct {
	Highlighted []string
}

// ViewsOf converts the nodes of g, ordered by id.
func ViewsOf[T any](g *domain.Hypergraph[T]) []NodeView {
	nodes := g.Nodes()
	views := make([]NodeView, 0, len(nodes))
	for _, n := range nodes {
		views = append(views, NodeView{
			ID:         n.ID,
			StateSpace: n.StateSpace,
			Value:      fmt.Sprint(n.CurrentState),
			Coherence:  n.LocalCoherence,
		})
	}
	return views
}

// GenerateMermaid produces a Mermaid flowchart from nodes and the handover links of
// a hypergraph (see domain.Hypergraph.Handovers).
// Nodes sharing a state space are grouped in a subgraph. Edge style follows the protocol:
// - Creative: thick (==>)
// - Destructive: dotted (-.->)
// - Conservative / Transmutative: plain (-->)
func GenerateMermaid(nodes []NodeView, links []domain.HandoverLink, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	bySpace := make(map[string][]NodeView)
	for _, n := range nodes {
		bySpace[n.StateSpace] = append(bySpace[n.StateSpace], n)
	}
	spaces := make([]string, 0, len(bySpace))
	for s := range bySpace {
		spaces = append(spaces, s)
	}
	sort.Strings(spaces)

	for _, space := range spaces {
		indent := "    "
		if space != "" {
			sb.WriteString(fmt.Sprintf("    subgraph space_%s[\"%s\"]\n", sanitizeMermaidID(space), escapeLabel(space)))
			indent = "        "
		}
		for _, n := range bySpace[space] {
			sb.WriteString(indent + nodeLine(n) + "\n")
		}
		if space != "" {
			sb.WriteString("    end\n")
		}
	}

	for _, l := range links {
		label := escapeLabel(fmt.Sprintf("%s (%s)", l.HandoverID, l.Protocol))
		var arrow string
		switch l.Protocol {
		case domain.Creative:
			arrow = fmt.Sprintf("== \"%s\" ==>", label)
		case domain.Destructive:
			arrow = fmt.Sprintf("-. \"%s\" .->", label)
		default:
			arrow = fmt.Sprintf("-- \"%s\" -->", label)
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", sanitizeMermaidID(l.Source), arrow, sanitizeMermaidID(l.Target)))
	}

	if overlay != nil && len(overlay.Highlighted) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef highlighted fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		seen := make(map[string]bool)
		for _, id := range overlay.Highlighted {
			safeID := sanitizeMermaidID(id)
			if seen[safeID] {
				continue
			}
			seen[safeID] = true
			sb.WriteString(fmt.Sprintf("    class %s highlighted;\n", safeID))
		}
	}

	return sb.String()
}

func nodeLine(n NodeView) string {
	label := escapeLabel(n.ID)
	if n.Value != "" {
		label += "<br/>" + escapeLabel(n.Value)
	}
	if n.Coherence != domain.DefaultCoherence {
		label += "<br/>coherence " + strconv.FormatFloat(n.Coherence, 'g', -1, 64)
	}
	return fmt.Sprintf("%s(\"%s\")", sanitizeMermaidID(n.ID), label)
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

// emptyID stands in for the empty node id, which Mermaid cannot parse.
const emptyID = "empty_id"

// sanitizeMermaidID keeps [A-Za-z0-9_] and maps every other rune to '_'.
func sanitizeMermaidID(id string) string {
	if id == "" {
		return emptyID
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, id)
}
