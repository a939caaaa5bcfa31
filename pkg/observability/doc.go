/*
Package observability records what a ringctl run did to the host.

Counters track FIFO creation and node launches. A run is short-lived, so the
counters are exported by writing a node-exporter textfile instead of serving
an HTTP endpoint.
*/
package observability
