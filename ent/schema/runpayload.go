package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// RunPayload holds the schema definition for the RunPayload entity: the
// canonical replay blob, one per run.
type RunPayload struct {
	ent.Schema
}

// Fields of the RunPayload.
func (RunPayload) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("payload_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Unique().
			Immutable(),
		field.Bytes("body").
			Comment("Canonical payload JSON; gzip-compressed above the codec threshold"),
		field.Int("size_bytes"),
		field.String("content_hash").
			Comment("SHA-256 of the canonical JSON, stable across compression"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RunPayload.
func (RunPayload) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", QARun.Type).
			Ref("payload").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}
