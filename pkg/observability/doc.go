/*
Package observability provides Prometheus instrumentation for the Ariadne
engine: gateway call counters and latency histograms, consumed by the remote
gateway client and exposed by the reference authority's /metrics endpoint.
*/
package observability
