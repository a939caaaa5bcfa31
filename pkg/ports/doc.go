/*
Package ports defines the driven ports (interfaces) of the launcher.

These interfaces decouple the ring orchestration from the host, allowing the
same launch logic to run against real processes, a dry-run recorder, or test
doubles.

# Key Interfaces

  - CommandRunner: Runs a command to completion with captured stdout, or spawns one detached.
  - FileSystem: Inspects and removes the ring's named pipes.
*/
package ports
