/*
Package launcher provisions a ring of node processes on the local host.

A run has two sequential phases. First it creates one named pipe per node.
Then it opens one terminal per node, running the node command with its input
bound to its own pipe and its output bound to the next node's pipe.

	r := process.NewRunner()
	l := launcher.New(r, launcher.WithLogger(logger))
	rep, err := l.Run(ctx, launcher.Request{Count: 3, LogLevel: "debug"})

Subprocess failures are logged and counted, and the run continues with the
next node. Nothing is rolled back. A bad node count or a template that does
not render aborts the run before any command is issued.
*/
package launcher
