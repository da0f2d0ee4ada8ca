package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunEvent holds the schema definition for the RunEvent entity: the
// append-only journal. Rows are never updated or deleted individually;
// (run_id, seq) is the total order within a run.
type RunEvent struct {
	ent.Schema
}

// Fields of the RunEvent.
func (RunEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.Int("seq").
			Immutable().
			Comment("Allocated under the run row lock; gapless per run"),
		field.Enum("type").
			Values(
				"REQUESTED",
				"SPEC_FETCHED",
				"SPEC_FETCH_FAILED",
				"SCENARIO_CREATED",
				"SCENARIO_GENERATION_FAILED",
				"AI_SUCCESS",
				"AI_FAILED",
				"EXECUTION_STARTED",
				"EXECUTION_SUCCESS",
				"EXECUTION_FAILED",
				"QA_EVAL_STARTED",
				"QA_EVAL_DONE",
				"QA_EVAL_FAILED",
				"COMPLETE",
				"FAILED",
				"CANCELLED",
			).
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Comment("Structured event data, bounded in size"),
		field.String("scenario_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("step_result_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("error_message").
			Optional().
			Nillable().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RunEvent.
func (RunEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", QARun.Type).
			Ref("events").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RunEvent.
func (RunEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "seq").
			Unique(),
		index.Fields("created_at"),
	}
}
