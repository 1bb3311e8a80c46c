package domain

// CrossStageState holds the sticky flags that survive from one stage to the
// next within a single puzzle instance. Both flags only ever go from false to
// true.
type CrossStageState struct {
	// GreenHasAppearedBefore is set the first time Green rule 3 is applied.
	GreenHasAppearedBefore bool `json:"green_has_appeared_before"`

	// RedHasFailedToAppear is set once any displayed sequence lacks Red.
	RedHasFailedToAppear bool `json:"red_has_failed_to_appear"`
}

// MarkGreenAppeared sets GreenHasAppearedBefore.
func (s *CrossStageState) MarkGreenAppeared() {
	s.GreenHasAppearedBefore = true
}

// MarkRedMissing sets RedHasFailedToAppear.
func (s *CrossStageState) MarkRedMissing() {
	s.RedHasFailedToAppear = true
}
