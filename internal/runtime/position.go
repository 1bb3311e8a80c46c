package runtime

import (
	"fmt"

	"github.com/aretw0/samuel/pkg/domain"
)

// positionQuantity returns the counter consulted for a stage and its noun
// (singular, plural).
func positionQuantity(stageNumber int, snap domain.Snapshot) (int, string, string, error) {
	switch stageNumber {
	case 1:
		return snap.BatteryCount, "battery", "batteries", nil
	case 2:
		return snap.TotalPorts, "port", "ports", nil
	case 3:
		return snap.IndicatorCount(), "indicator", "indicators", nil
	case 4:
		return snap.ModuleCount, "module", "modules", nil
	}
	return 0, "", "", &domain.InvalidStageError{Stage: stageNumber}
}

// selectPosition picks the 0-based index of the expected submission.
func selectPosition(stageNumber int, snap domain.Snapshot, length int) (int, domain.TraceEvent, error) {
	quantity, singular, plural, err := positionQuantity(stageNumber, snap)
	if err != nil {
		return 0, domain.TraceEvent{}, err
	}
	if length <= 0 {
		return 0, domain.TraceEvent{}, fmt.Errorf("%w: empty sequence", domain.ErrInvalidSequence)
	}

	position := quantity % length
	if position < 0 {
		position += length
	}

	var msg string
	if quantity == 1 {
		msg = fmt.Sprintf("There is 1 %s, so the correct position to submit is %d.", singular, position+1)
	} else {
		msg = fmt.Sprintf("There are %d %s, so the correct position to submit is %d.", quantity, plural, position+1)
	}

	return position, domain.TraceEvent{
		Type:     domain.TracePositionSelected,
		Stage:    stageNumber,
		Position: position,
		Message:  msg,
	}, nil
}
