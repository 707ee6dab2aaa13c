package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Subject is a top-level academic subject in the taxonomy.
type Subject struct {
	ent.Schema
}

func (Subject) Fields() []ent.Field {
	return []ent.Field{
		field.String("subject").
			Unique().
			Comment("Subject label, e.g. \"Mathematics\""),
	}
}
