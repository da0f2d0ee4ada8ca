package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/qawave/qawave/pkg/models"
)

// StepResult holds the schema definition for the StepResult entity.
type StepResult struct {
	ent.Schema
}

// Fields of the StepResult.
func (StepResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_result_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("scenario_id").
			Immutable(),
		field.Int("step_index").
			Immutable(),
		field.String("name").
			Optional(),
		field.String("method").
			Optional(),
		field.Text("endpoint").
			Optional().
			Comment("Resolved target, or the raw template when resolution failed"),
		field.Enum("status").
			Values("passed", "failed", "errored", "skipped"),
		field.Int("attempts").
			Default(0).
			Comment("Transport attempts dispatched, including retries"),
		field.Int("actual_status_code").
			Optional().
			Nillable(),
		field.JSON("actual_headers", map[string]string{}).
			Optional(),
		field.Text("actual_body").
			Optional().
			Comment("Truncated to the configured policy size"),
		field.String("body_digest").
			Optional().
			Comment("SHA-256 of the full response body, always untruncated"),
		field.JSON("assertion_results", []models.AssertionResult{}).
			Optional(),
		field.JSON("extracted", map[string]string{}).
			Optional(),
		field.JSON("unresolved", []string{}).
			Optional().
			Comment("Placeholders that never resolved, in first-appearance order"),
		field.Int64("duration_ms").
			Default(0),
		field.Time("started_at"),
		field.Time("finished_at"),
		field.Text("failure_reason").
			Optional().
			Nillable(),
		field.String("error_kind").
			Optional().
			Nillable(),
	}
}

// Edges of the StepResult.
func (StepResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", QARun.Type).
			Ref("step_results").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.From("scenario", Scenario.Type).
			Ref("step_results").
			Field("scenario_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the StepResult.
func (StepResult) Indexes() []ent.Index {
	return []ent.Index{
		// run_id is part of the key: replayed runs execute the source run's
		// scenarios, so (scenario_id, step_index) repeats across runs.
		index.Fields("run_id", "scenario_id", "step_index").
			Unique(),
		index.Fields("run_id"),
	}
}
