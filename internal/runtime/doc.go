/*
Package runtime implements the exploration engines and the path navigator.

The exhaustive DFS engine and the greedy stepper both implement
ports.Explorer; the facade arms exactly one of them per session. The
navigator replays the shortest discovered path against the authority.

All three share the same error discipline: a failed gateway call terminates
only the branch, tick or walk that issued it. Failures surface through the
session log and flags, never as errors thrown past the component.
*/
package runtime
