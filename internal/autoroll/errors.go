package autoroll

import (
	"fmt"
)

// Stage names a follow-up roll
type Stage string

const (
	StageDamage  Stage = "damage"
	StageFormula Stage = "formula"
)

// FollowUpError reports a follow-up roll that failed after the record was
// already emitted. The record returned alongside it stands.
type FollowUpError struct {
	Stage Stage
	Err   error
}

func (e *FollowUpError) Error() string {
	return fmt.Sprintf("%s roll failed: %v", e.Stage, e.Err)
}

func (e *FollowUpError) Unwrap() error {
	return e.Err
}
