/*
Package ports defines the driven ports (interfaces) around the Samuel Says engine.

These interfaces decouple the rule engine from the code that surrounds it in a
real bomb: where the environment counters come from, how displayed sequences are
generated and where puzzle instances are kept.

# Key Interfaces

  - BombInfo: read-only view of the bomb the puzzle is attached to.
  - SequenceGenerator: produces the displayed sequence for each stage.
  - PuzzleStore: keeps puzzle instances addressable by ID.
  - DistributedLocker: serialises updates to one puzzle across replicas.
*/
package ports
