package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/samuel/internal/logging"
	"github.com/aretw0/samuel/internal/presentation/tui"
	"github.com/aretw0/samuel/pkg/domain"
)

// errInterrupted is returned by InterruptibleReader once cancelled.
var errInterrupted = errors.New("interrupted")

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
				// Context cancelled elsewhere
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// signalOf returns the signal that cancelled ctx when ctx is a SignalContext.
func signalOf(ctx context.Context) os.Signal {
	if sc, ok := ctx.(*SignalContext); ok {
		return sc.Signal()
	}
	return nil
}

// logInterruption reports a run stopped by a signal. Other endings print
// nothing here.
func logInterruption(w io.Writer, stage int, sig os.Signal) {
	switch {
	case sig == os.Interrupt:
		fmt.Fprintln(w, "[CTRL+C]")
		printSystemMessage(w, "Interrupted at stage %d.", stage)
	case sig != nil:
		printSystemMessage(w, "Terminated at stage %d (%v).", stage, sig)
	}
}

// createLogger configures the application logger.
// Debug forces debug level regardless of the configured one.
func createLogger(level string, debug bool) (*slog.Logger, error) {
	if debug {
		return logging.New(slog.LevelDebug), nil
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(lvl), nil
}

// createDebugHooks logs every rule decision, one line per event.
func createDebugHooks(logger *slog.Logger) domain.RuleHooks {
	logEvent := func(ctx context.Context, e *domain.TraceEvent) {
		logger.Debug("Rule Event", "type", string(e.Type), "colour", e.Colour.String(), "rule", e.Rule)
	}
	return domain.RuleHooks{
		OnRuleMatched: logEvent,
		OnRuleSkipped: logEvent,
		OnRuleApplied: logEvent,
		OnPositionSelected: func(ctx context.Context, e *domain.TraceEvent) {
			logger.Debug("Position Selected", "stage", e.Stage, "position", e.Position+1)
		},
	}
}

// newPrinter styles output only when w is a terminal.
func newPrinter(w io.Writer) *tui.Printer {
	if f, ok := w.(*os.File); ok {
		return tui.NewPrinter(f)
	}
	return tui.NewPlainPrinter(w)
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

// InterruptibleReader wraps an io.Reader (like os.Stdin) and checks for a cancellation signal.
type InterruptibleReader struct {
	base   io.Reader
	cancel <-chan struct{}
}

func NewInterruptibleReader(base io.Reader, cancel <-chan struct{}) *InterruptibleReader {
	return &InterruptibleReader{
		base:   base,
		cancel: cancel,
	}
}

func (r *InterruptibleReader) Read(p []byte) (n int, err error) {
	// Check before blocking
	select {
	case <-r.cancel:
		return 0, errInterrupted
	default:
	}

	// Read (This blocks!)
	n, err = r.base.Read(p)

	// Check after returning
	select {
	case <-r.cancel:
		return 0, errInterrupted
	default:
	}
	return n, err
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, errInterrupted) ||
		errors.Is(err, io.EOF)
}

func handleExecutionError(err error) error {
	if err == nil || isInterrupted(err) {
		return nil // Exit 0 for interruptions
	}
	return err
}
