package domain

import (
	"context"
	"encoding/json"
)

// TraceType defines the category of a trace entry.
type TraceType string

const (
	TraceConditionMatched TraceType = "condition_matched"
	TraceRuleSkipped      TraceType = "rule_skipped"
	TraceActionApplied    TraceType = "action_applied"
	TracePositionSelected TraceType = "position_selected"
)

// TraceEvent records one decision taken while computing an expected submission.
type TraceEvent struct {
	Type   TraceType `json:"type"`
	Stage  int       `json:"stage"`
	Colour Colour    `json:"colour"`
	// Rule is the 1-based row of the colour's table. Zero for position events.
	Rule int `json:"rule,omitempty"`
	// Position is the 0-based index chosen by position selection.
	Position int    `json:"position"`
	Message  string `json:"message"`
}

func (e TraceEvent) String() string {
	return e.Message
}

// MarshalJSON writes colour and rule only for rule events and position only
// for position events.
func (e TraceEvent) MarshalJSON() ([]byte, error) {
	type wire struct {
		Type     TraceType `json:"type"`
		Stage    int       `json:"stage"`
		Colour   *Colour   `json:"colour,omitempty"`
		Rule     int       `json:"rule,omitempty"`
		Position *int      `json:"position,omitempty"`
		Message  string    `json:"message"`
	}
	w := wire{Type: e.Type, Stage: e.Stage, Message: e.Message}
	if e.Type == TracePositionSelected {
		position := e.Position
		w.Position = &position
	} else {
		colour := e.Colour
		w.Colour = &colour
		w.Rule = e.Rule
	}
	return json.Marshal(w)
}

// RuleInfo describes one row of a colour's rule table.
type RuleInfo struct {
	Colour    Colour `json:"colour"`
	Number    int    `json:"number"`
	Condition string `json:"condition"`
	Action    string `json:"action"`
}

// RuleHooks defines callbacks for engine observability.
// Every callback is optional.
type RuleHooks struct {
	OnRuleMatched      func(context.Context, *TraceEvent)
	OnRuleSkipped      func(context.Context, *TraceEvent)
	OnRuleApplied      func(context.Context, *TraceEvent)
	OnPositionSelected func(context.Context, *TraceEvent)
}

// Emit dispatches the event to the callback matching its type.
func (h RuleHooks) Emit(ctx context.Context, e *TraceEvent) {
	var fn func(context.Context, *TraceEvent)
	switch e.Type {
	case TraceConditionMatched:
		fn = h.OnRuleMatched
	case TraceRuleSkipped:
		fn = h.OnRuleSkipped
	case TraceActionApplied:
		fn = h.OnRuleApplied
	case TracePositionSelected:
		fn = h.OnPositionSelected
	}
	if fn != nil {
		fn(ctx, e)
	}
}

// Merge returns hooks that call h first and then other.
func (h RuleHooks) Merge(other RuleHooks) RuleHooks {
	chain := func(a, b func(context.Context, *TraceEvent)) func(context.Context, *TraceEvent) {
		if a == nil {
			return b
		}
		if b == nil {
			return a
		}
		return func(ctx context.Context, e *TraceEvent) {
			a(ctx, e)
			b(ctx, e)
		}
	}
	return RuleHooks{
		OnRuleMatched:      chain(h.OnRuleMatched, other.OnRuleMatched),
		OnRuleSkipped:      chain(h.OnRuleSkipped, other.OnRuleSkipped),
		OnRuleApplied:      chain(h.OnRuleApplied, other.OnRuleApplied),
		OnPositionSelected: chain(h.OnPositionSelected, other.OnPositionSelected),
	}
}
