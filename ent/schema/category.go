package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Category is a taxonomy entry created on first encounter of a category name.
type Category struct {
	ent.Schema
}

func (Category) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			Comment("Category name, looked up by exact match"),
		field.String("subject").
			Optional().
			Comment("Inferred academic subject; empty when inference failed"),
	}
}
