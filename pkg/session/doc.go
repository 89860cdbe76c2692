/*
Package session implements the canonical state store for one maze session.

It owns every piece of mutable session state (position, discovered map,
visited set, flags, log, results) and the transition rules between them.
All network I/O lives in the explorers and adapters; the store only ever
applies responses they hand it.
*/
package session
