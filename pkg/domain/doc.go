/*
Package domain contains the value types shared by the Samuel Says engine and
its adapters.

It is kept pure and free of I/O, following the same hexagonal layout as the
rest of the module.

# Key Entities

  - Colour, Symbol, ColouredSymbol: the elements of a displayed sequence.
  - Sequence: an ordered run of coloured symbols (3 or 4 long when displayed).
  - Snapshot: the bomb-derived counters captured once per puzzle.
  - CrossStageState: sticky flags that persist across the stages of a puzzle.
  - TraceEvent: one decision taken by the engine, returned to the caller.
*/
package domain
