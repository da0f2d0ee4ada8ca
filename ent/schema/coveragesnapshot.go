package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/qawave/qawave/pkg/models"
)

// CoverageSnapshot holds the schema definition for the CoverageSnapshot
// entity: the per-operation coverage report, one per run.
type CoverageSnapshot struct {
	ent.Schema
}

// Fields of the CoverageSnapshot.
func (CoverageSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("coverage_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Unique().
			Immutable(),
		field.Int("ops_total"),
		field.Int("ops_covered"),
		field.Int("ops_failed"),
		field.JSON("uncovered_ops", []models.OperationRef{}).
			Optional(),
		field.JSON("per_op_status", map[string]models.OperationOutcome{}).
			Optional().
			Comment("\"METHOD path\" key to COVERED/FAILED/UNTESTED"),
		field.Int("scenarios_passed"),
		field.Int("scenarios_failed"),
		field.Time("computed_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CoverageSnapshot.
func (CoverageSnapshot) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", QARun.Type).
			Ref("coverage").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}
