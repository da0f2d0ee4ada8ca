package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// QASummary holds the schema definition for the QASummary entity: the final
// verdict artifact, one per run.
type QASummary struct {
	ent.Schema
}

// Fields of the QASummary.
func (QASummary) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("summary_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Unique().
			Immutable(),
		field.Enum("overall_verdict").
			Values("PASS", "FAIL", "INCONCLUSIVE"),
		field.Int("passed_scenarios"),
		field.Int("failed_scenarios"),
		field.Int("errored_scenarios"),
		field.Text("narrative_summary"),
		field.Enum("narrative_source").
			Values("ai", "template").
			Comment("Whether the narrative came from the provider or the deterministic template"),
		field.JSON("recommendations", []string{}).
			Optional(),
		field.Int("quality_score").
			Comment("0..100 composite of pass rate and coverage"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the QASummary.
func (QASummary) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", QARun.Type).
			Ref("summary").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}
