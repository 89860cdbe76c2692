/*
Package ports defines the driven ports (interfaces) for the Ariadne engine.

These interfaces decouple the core exploration logic from external
implementations, allowing the engine to work against any maze authority
transport and the reference authority to work with various storage backends.

# Key Interfaces

  - Gateway: the remote maze authority contract (start, discover, move).
  - Explorer: a single exploration capability covering both strategies.
  - GameStore: authority-side persistence for running games.
*/
package ports
