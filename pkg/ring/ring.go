package ring

import (
	"errors"
	"fmt"
	"strconv"
)

// DefaultFifoPrefix is where node FIFOs live unless a profile says otherwise.
const DefaultFifoPrefix = "/tmp/robot-fifo-"

// MinNodes is the smallest ring that can be built.
const MinNodes = 2

// ErrTooFewNodes is returned when a ring is requested with fewer than MinNodes nodes.
var ErrTooFewNodes = errors.New("the number of nodes must be >= 2")

// Link binds one node to its input and output FIFOs.
type Link struct {
	Name int
	In   string
	Out  string
}

// FifoPath returns the FIFO path for node i.
func FifoPath(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}

// ValidateCount checks the node count precondition.
func ValidateCount(count int) error {
	if count < MinNodes {
		return fmt.Errorf("%w (got %d)", ErrTooFewNodes, count)
	}
	return nil
}

// Paths returns every FIFO path of a ring of the given size, in index order.
func Paths(count int, prefix string) ([]string, error) {
	if err := ValidateCount(count); err != nil {
		return nil, err
	}
	paths := make([]string, count)
	for i := range paths {
		paths[i] = FifoPath(prefix, i)
	}
	return paths, nil
}

// Build returns the links of a closed ring of count nodes.
// The last node writes into the first node's input.
func Build(count int, prefix string) ([]Link, error) {
	paths, err := Paths(count, prefix)
	if err != nil {
		return nil, err
	}
	links := make([]Link, count)
	for i := range links {
		links[i] = Link{
			Name: i,
			In:   paths[i],
			Out:  paths[(i+1)%count],
		}
	}
	return links, nil
}
