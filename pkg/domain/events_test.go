package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/samuel/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceEvent_JSON(t *testing.T) {
	t.Run("Position event keeps position zero and has no colour", func(t *testing.T) {
		ev := domain.TraceEvent{
			Type:     domain.TracePositionSelected,
			Stage:    1,
			Position: 0,
			Message:  "There are 4 batteries, so the correct position to submit is 1.",
		}
		data, err := json.Marshal(ev)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"position_selected","stage":1,"position":0,"message":"There are 4 batteries, so the correct position to submit is 1."}`, string(data))
	})

	t.Run("Rule event has colour and rule but no position", func(t *testing.T) {
		ev := domain.TraceEvent{
			Type:    domain.TraceConditionMatched,
			Stage:   2,
			Colour:  domain.Red,
			Rule:    3,
			Message: "Red: Condition 3 applies.",
		}
		data, err := json.Marshal(ev)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"condition_matched","stage":2,"colour":"Red","rule":3,"message":"Red: Condition 3 applies."}`, string(data))
	})

	t.Run("Decodes what it encodes", func(t *testing.T) {
		in := []domain.TraceEvent{
			{Type: domain.TraceActionApplied, Stage: 3, Colour: domain.Blue, Rule: 5, Message: "Applying action 5."},
			{Type: domain.TracePositionSelected, Stage: 3, Position: 2, Message: "m"},
		}
		data, err := json.Marshal(in)
		require.NoError(t, err)

		var out []domain.TraceEvent
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})
}
