package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/qawave/qawave/pkg/models"
)

// Scenario holds the schema definition for the Scenario entity.
type Scenario struct {
	ent.Schema
}

// Fields of the Scenario.
func (Scenario) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("scenario_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("name"),
		field.Text("description").
			Optional().
			Nillable(),
		field.Enum("source").
			Values("ai_generated", "manual", "imported", "replayed", "fallback"),
		field.String("operation_id").
			Optional().
			Nillable().
			Comment("OpenAPI operationId label (weak reference, no FK)"),
		field.Enum("status").
			Values("pending", "ready", "invalid", "disabled").
			Default("pending"),
		field.JSON("tags", []string{}).
			Optional(),
		field.Int("priority").
			Default(0),
		field.Int("version").
			Default(1),
		field.JSON("steps", []models.Step{}).
			Comment("Ordered steps in the scenario JSON contract form"),
		field.Int("generation_attempts").
			Default(0).
			Comment("AI verify attempts consumed, including the accepted one"),
		field.JSON("failure_kinds", []string{}).
			Optional().
			Comment("Verifier failure kind per rejected attempt, in order"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Scenario.
func (Scenario) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", QARun.Type).
			Ref("scenarios").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.To("step_results", StepResult.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Scenario.
func (Scenario) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "status"),
		index.Fields("run_id", "created_at"),
	}
}
