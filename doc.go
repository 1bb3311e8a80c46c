/*
Package samuel computes the expected answer for the "Samuel Says" bomb module.

Each stage the module flashes a short sequence of coloured Morse symbols. The
defuser does not repeat it back: every symbol is pushed through its colour's
rule table, which rewrites the sequence, and a bomb property then picks one
position of the rewritten sequence. That element is the expected submission.

# Usage

A Puzzle captures the bomb once and carries the cross-stage flags between
stages.

	bomb, err := file.Load("bomb.yaml")
	if err != nil {
		log.Fatal(err)
	}

	p := samuel.New(bomb)
	stage, err := p.Advance(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(stage.Expected())

For a single stateless computation use ExpectedSubmission with an explicit
snapshot and cross-stage state.

# Observability

The engine reports every matched condition, skipped rule, applied action and
chosen position as a TraceEvent. Pass WithHooks to receive them as they
happen or WithLogger to log them at debug level.
*/
package samuel
