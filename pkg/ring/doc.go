/*
Package ring describes the topology ringctl provisions: N nodes joined by N
named pipes, where node i reads pipe i and writes pipe (i+1) mod N.

The package is pure. It names paths and computes adjacency; creating the
pipes and launching nodes belongs to the launcher.
*/
package ring
