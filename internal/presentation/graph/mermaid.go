package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/ringctl/pkg/ring"
)

// GenerateMermaid produces a Mermaid flowchart of the ring.
// Nodes are drawn as circles and every FIFO as an edge labeled with its path.
// The edge that closes the ring (last node back to node 0) is dotted.
func GenerateMermaid(links []ring.Link) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, l := range links {
		sb.WriteString(fmt.Sprintf("    %s((\"node %d\"))\n", nodeID(l.Name), l.Name))
	}

	for i, l := range links {
		next := links[(i+1)%len(links)]
		label := strings.ReplaceAll(l.Out, "\"", "'")

		arrow := fmt.Sprintf("-- \"%s\" -->", label)
		if next.Name == links[0].Name {
			arrow = fmt.Sprintf("-. \"%s\" .->", label)
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", nodeID(l.Name), arrow, nodeID(next.Name)))
	}
	return sb.String()
}

func nodeID(name int) string {
	return fmt.Sprintf("n%d", name)
}
