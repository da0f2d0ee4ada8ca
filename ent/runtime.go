// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/qawave/qawave/ent/coveragesnapshot"
	"github.com/qawave/qawave/ent/qarun"
	"github.com/qawave/qawave/ent/qasummary"
	"github.com/qawave/qawave/ent/runevent"
	"github.com/qawave/qawave/ent/runpayload"
	"github.com/qawave/qawave/ent/scenario"
	"github.com/qawave/qawave/ent/schema"
	"github.com/qawave/qawave/ent/stepresult"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	coveragesnapshotFields := schema.CoverageSnapshot{}.Fields()
	_ = coveragesnapshotFields
	// coveragesnapshotDescComputedAt is the schema descriptor for computed_at field.
	coveragesnapshotDescComputedAt := coveragesnapshotFields[9].Descriptor()
	// coveragesnapshot.DefaultComputedAt holds the default value on creation for the computed_at field.
	coveragesnapshot.DefaultComputedAt = coveragesnapshotDescComputedAt.Default.(func() time.Time)
	qarunFields := schema.QARun{}.Fields()
	_ = qarunFields
	// qarunDescCreatedAt is the schema descriptor for created_at field.
	qarunDescCreatedAt := qarunFields[19].Descriptor()
	// qarun.DefaultCreatedAt holds the default value on creation for the created_at field.
	qarun.DefaultCreatedAt = qarunDescCreatedAt.Default.(func() time.Time)
	qasummaryFields := schema.QASummary{}.Fields()
	_ = qasummaryFields
	// qasummaryDescCreatedAt is the schema descriptor for created_at field.
	qasummaryDescCreatedAt := qasummaryFields[10].Descriptor()
	// qasummary.DefaultCreatedAt holds the default value on creation for the created_at field.
	qasummary.DefaultCreatedAt = qasummaryDescCreatedAt.Default.(func() time.Time)
	runeventFields := schema.RunEvent{}.Fields()
	_ = runeventFields
	// runeventDescCreatedAt is the schema descriptor for created_at field.
	runeventDescCreatedAt := runeventFields[8].Descriptor()
	// runevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	runevent.DefaultCreatedAt = runeventDescCreatedAt.Default.(func() time.Time)
	runpayloadFields := schema.RunPayload{}.Fields()
	_ = runpayloadFields
	// runpayloadDescCreatedAt is the schema descriptor for created_at field.
	runpayloadDescCreatedAt := runpayloadFields[5].Descriptor()
	// runpayload.DefaultCreatedAt holds the default value on creation for the created_at field.
	runpayload.DefaultCreatedAt = runpayloadDescCreatedAt.Default.(func() time.Time)
	scenarioFields := schema.Scenario{}.Fields()
	_ = scenarioFields
	// scenarioDescPriority is the schema descriptor for priority field.
	scenarioDescPriority := scenarioFields[8].Descriptor()
	// scenario.DefaultPriority holds the default value on creation for the priority field.
	scenario.DefaultPriority = scenarioDescPriority.Default.(int)
	// scenarioDescVersion is the schema descriptor for version field.
	scenarioDescVersion := scenarioFields[9].Descriptor()
	// scenario.DefaultVersion holds the default value on creation for the version field.
	scenario.DefaultVersion = scenarioDescVersion.Default.(int)
	// scenarioDescGenerationAttempts is the schema descriptor for generation_attempts field.
	scenarioDescGenerationAttempts := scenarioFields[11].Descriptor()
	// scenario.DefaultGenerationAttempts holds the default value on creation for the generation_attempts field.
	scenario.DefaultGenerationAttempts = scenarioDescGenerationAttempts.Default.(int)
	// scenarioDescCreatedAt is the schema descriptor for created_at field.
	scenarioDescCreatedAt := scenarioFields[13].Descriptor()
	// scenario.DefaultCreatedAt holds the default value on creation for the created_at field.
	scenario.DefaultCreatedAt = scenarioDescCreatedAt.Default.(func() time.Time)
	// scenarioDescUpdatedAt is the schema descriptor for updated_at field.
	scenarioDescUpdatedAt := scenarioFields[14].Descriptor()
	// scenario.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	scenario.DefaultUpdatedAt = scenarioDescUpdatedAt.Default.(func() time.Time)
	// scenario.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	scenario.UpdateDefaultUpdatedAt = scenarioDescUpdatedAt.UpdateDefault.(func() time.Time)
	stepresultFields := schema.StepResult{}.Fields()
	_ = stepresultFields
	// stepresultDescAttempts is the schema descriptor for attempts field.
	stepresultDescAttempts := stepresultFields[8].Descriptor()
	// stepresult.DefaultAttempts holds the default value on creation for the attempts field.
	stepresult.DefaultAttempts = stepresultDescAttempts.Default.(int)
	// stepresultDescDurationMs is the schema descriptor for duration_ms field.
	stepresultDescDurationMs := stepresultFields[16].Descriptor()
	// stepresult.DefaultDurationMs holds the default value on creation for the duration_ms field.
	stepresult.DefaultDurationMs = stepresultDescDurationMs.Default.(int64)
}
