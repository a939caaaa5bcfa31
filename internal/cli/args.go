package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/ringctl/pkg/ring"
)

// LaunchArgs are the positional arguments of a launch: COUNT [LOGLEVEL] [CARGOARGS...].
type LaunchArgs struct {
	Count     int
	LogLevel  string
	ExtraArgs []string
}

// ParseLaunchArgs splits positional arguments. LogLevel is left empty when
// not given so the profile default applies. An argument after COUNT that
// starts with '-' is taken as the first cargo argument, not a log level.
func ParseLaunchArgs(args []string) (LaunchArgs, error) {
	var la LaunchArgs
	if len(args) == 0 {
		return la, fmt.Errorf("missing node count")
	}

	count, err := strconv.Atoi(args[0])
	if err != nil {
		return la, fmt.Errorf("invalid node count %q: %w", args[0], err)
	}
	if err := ring.ValidateCount(count); err != nil {
		return la, err
	}
	la.Count = count

	rest := args[1:]
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
		la.LogLevel = rest[0]
		rest = rest[1:]
	}
	if len(rest) > 0 && rest[0] == "--" {
		rest = rest[1:]
	}
	la.ExtraArgs = rest
	return la, nil
}
