/*
Package domain defines the core types of the Ariadne maze engine.

It is dependency-free on purpose: coordinates, cells, paths, session
snapshots and the authority's response payloads are shared vocabulary
between the exploration engines, the adapters and the presentation layer.
*/
package domain
