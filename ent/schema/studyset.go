package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// StudySet is a named collection of generated quiz questions.
type StudySet struct {
	ent.Schema
}

func (StudySet) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable().
			Comment("Opaque identifier assigned at creation"),
		field.String("name").
			Comment("Human-facing set name"),
		field.Bool("generated").
			Default(true).
			Comment("Whether the set was produced by the generation pipeline"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the set was persisted"),
	}
}

func (StudySet) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
