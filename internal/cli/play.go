package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/samuel"
	"github.com/aretw0/samuel/pkg/domain"
)

// PlayOptions configures an interactive puzzle.
type PlayOptions struct {
	Options
	// Auto prints every stage with its answer instead of prompting.
	Auto bool
}

// RunPlay plays the four stages of one puzzle. Each stage shows a generated
// sequence and reads the player's answer, a token such as "y-" or "red dot".
// "exit" or "quit" stops early.
func RunPlay(ctx context.Context, in io.Reader, out io.Writer, opts PlayOptions) error {
	logger, err := createLogger(opts.LogLevel, opts.Debug)
	if err != nil {
		return err
	}
	snap, err := opts.resolveSnapshot()
	if err != nil {
		return err
	}
	printer := newPrinter(out)
	if printer.Styled() {
		printer.Banner(strings.TrimSpace(samuel.Version))
	}

	p := samuel.NewFromSnapshot(snap, opts.puzzleOptions(logger)...)
	scanner := bufio.NewScanner(NewInterruptibleReader(in, ctx.Done()))
	strikes := 0

	for !p.Solved() {
		stage, err := p.Advance(ctx)
		if err != nil {
			if isInterrupted(err) {
				logInterruption(out, p.StageNumber()+1, signalOf(ctx))
			}
			return handleExecutionError(err)
		}
		fmt.Fprintf(out, "\nStage %d\n", stage.Number)
		printer.Sequence("Displayed:", stage.Displayed)

		if opts.Auto {
			if err := printer.Stage(stage); err != nil {
				return err
			}
			continue
		}

		answer, err := readAnswer(scanner, out)
		if err != nil {
			if errors.Is(err, errQuit) {
				printSystemMessage(out, "Goodbye.")
				return nil
			}
			if isInterrupted(err) {
				logInterruption(out, stage.Number, signalOf(ctx))
			}
			return handleExecutionError(err)
		}
		if p.Check(answer) {
			fmt.Fprintln(out, "Correct.")
			continue
		}
		strikes++
		fmt.Fprintf(out, "Strike! The expected response was %s.\n", stage.Expected())
		if err := printer.Stage(stage); err != nil {
			return err
		}
	}

	printSystemMessage(out, "Module solved with %d strike(s).", strikes)
	return nil
}

var errQuit = errors.New("quit")

// readAnswer prompts until the player enters a valid coloured symbol.
func readAnswer(scanner *bufio.Scanner, out io.Writer) (domain.ColouredSymbol, error) {
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return domain.ColouredSymbol{}, err
			}
			return domain.ColouredSymbol{}, io.EOF
		}
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			return domain.ColouredSymbol{}, errQuit
		}
		answer, err := domain.ParseColouredSymbol(strings.Join(strings.Fields(line), ":"))
		if err != nil {
			fmt.Fprintf(out, "Invalid answer %q. Try e.g. \"y-\" or \"red dot\".\n", line)
			continue
		}
		return answer, nil
	}
}
