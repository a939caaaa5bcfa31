/*
Package ringctl provisions a local ring of node processes for manual testing.

A ring of N nodes is wired with N named pipes. Node i reads from pipe i and
writes to pipe (i+1) mod N, so the last node feeds the first. ringctl creates
the pipes and opens one terminal per node; the node program itself is an
external collaborator that must accept --input, --output and --name.

# Usage

From the command line:

	ringctl 3 debug --release

This creates /tmp/robot-fifo-0 .. /tmp/robot-fifo-2 and runs, in three new
terminals:

	sh -c "RUST_LOG=robot=debug cargo run --release -- --input /tmp/robot-fifo-0 --output /tmp/robot-fifo-1 --name 0"
	...

As a library, see package launcher:

	l := launcher.New(process.NewRunner(), launcher.WithLogger(logger))
	rep, err := l.Run(ctx, launcher.Request{Count: 3, LogLevel: "debug"})

# Configuration

The terminal, the mkfifo command, the FIFO prefix and the node template are
read from a profile file (ringctl.yaml, .json or .toml), RINGCTL_* variables
and flags, in increasing order of precedence.

Launched terminals are never tracked or waited on, and FIFOs are never removed
by a launch; `ringctl clean COUNT` removes them explicitly.
*/
package ringctl
