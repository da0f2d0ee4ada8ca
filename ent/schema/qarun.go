package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/qawave/qawave/pkg/models"
)

// QARun holds the schema definition for the QARun entity.
type QARun struct {
	ent.Schema
}

// Mixin for custom ID field.
func (QARun) Mixin() []ent.Mixin {
	return []ent.Mixin{}
}

// Fields of the QARun.
func (QARun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.Text("description").
			Optional().
			Nillable(),
		field.Text("requirement_text").
			Optional().
			Nillable().
			Comment("Natural-language requirement driving generation (full-text searchable)"),
		field.Enum("spec_source").
			Values("url", "inline"),
		field.String("spec_url").
			Optional().
			Nillable(),
		field.Text("spec_inline").
			Optional().
			Nillable(),
		field.String("spec_hash").
			Optional().
			Nillable().
			Comment("SHA-256 of the fetched spec bytes, set at SPEC_FETCHED"),
		field.String("base_url"),
		field.Enum("mode").
			Values("standard", "security", "performance").
			Default("standard"),
		field.JSON("config", models.RunConfig{}).
			Comment("Effective per-run pipeline options"),
		field.Enum("status").
			Values(
				"requested",
				"spec_fetched",
				"ai_success",
				"execution_in_progress",
				"execution_complete",
				"qa_eval_in_progress",
				"qa_eval_done",
				"complete",
				"cancelled",
				"failed_spec_fetch",
				"failed_generation",
				"failed_execution",
			).
			Default("requested"),
		field.String("triggered_by").
			Optional(),
		field.String("replay_of").
			Optional().
			Nillable().
			Comment("Source run whose payload this run re-executes"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("error_kind").
			Optional().
			Nillable(),
		field.String("worker_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.Time("heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the run was requested"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker started processing"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int64("duration_ms").
			Optional().
			Nillable(),
	}
}

// Edges of the QARun.
func (QARun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("scenarios", Scenario.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("step_results", StepResult.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", RunEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("payload", RunPayload.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("coverage", CoverageSnapshot.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("summary", QASummary.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the QARun.
func (QARun) Indexes() []ent.Index {
	return []ent.Index{
		// Single field indexes
		index.Fields("status"),
		index.Fields("worker_id"),
		index.Fields("triggered_by"),

		// Composite indexes
		index.Fields("status", "created_at"),
		index.Fields("status", "heartbeat_at"),

		// Partial index for claim scans over the queue
		index.Fields("created_at").
			StorageKey("qa_runs_requested_scan").
			Annotations(entsql.IndexWhere("status = 'requested'")),
	}
}

// Annotations for PostgreSQL-specific features.
// Note: the GIN index for requirement_text full-text search is created via
// migration in pkg/database/migrations.
func (QARun) Annotations() []schema.Annotation {
	return []schema.Annotation{}
}
