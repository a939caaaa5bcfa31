package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/ringctl/pkg/launcher"
	"github.com/muesli/termenv"
)

// PlanMarkdown describes a ring plan as a markdown document.
func PlanMarkdown(plans []launcher.NodePlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Ring of %d nodes\n\n", len(plans))
	b.WriteString("| Node | Input | Output |\n")
	b.WriteString("|-----:|-------|--------|\n")
	for _, p := range plans {
		fmt.Fprintf(&b, "| %d | `%s` | `%s` |\n", p.Name, p.In, p.Out)
	}
	b.WriteString("\n## Commands\n\n")
	for _, p := range plans {
		fmt.Fprintf(&b, "```sh\n%s\n```\n\n", shellJoin(p.Argv))
	}
	return b.String()
}

// RenderPlan writes the plan to w. When pretty is set the markdown goes
// through glamour; otherwise the raw markdown is written, which keeps the
// output usable in pipes.
func RenderPlan(w io.Writer, plans []launcher.NodePlan, pretty bool) error {
	md := PlanMarkdown(plans)
	if pretty {
		rendered, err := NewRenderer(0)(md)
		if err == nil {
			md = rendered
		}
	}
	_, err := io.WriteString(w, md)
	return err
}

// PrintSummary writes a one-line, colored outcome of a run.
func PrintSummary(w io.Writer, rep launcher.Report) {
	out := termenv.NewOutput(w)
	ok := out.String(fmt.Sprintf("%d nodes launched", rep.Launch.Launched)).Foreground(out.Color("#34d399"))
	line := fmt.Sprintf("%s, %d fifos created", ok, rep.Fifos.Created)
	if rep.Fifos.Skipped > 0 {
		line += fmt.Sprintf(", %d reused", rep.Fifos.Skipped)
	}
	if failed := rep.Fifos.Failed + rep.Launch.Failed; failed > 0 {
		line += ", " + out.String(fmt.Sprintf("%d failures", failed)).Foreground(out.Color("#f87171")).String()
	}
	fmt.Fprintln(w, line)
}

// shellJoin quotes argv elements that contain spaces so the line can be pasted into a shell.
func shellJoin(argv []string) string {
	parts := make([]string, len(argv))
	for i, a := range argv {
		if a == "" || strings.ContainsAny(a, " \t\"'$") {
			parts[i] = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
			continue
		}
		parts[i] = a
	}
	return strings.Join(parts, " ")
}
