package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizQuestion is one persisted multiple-choice question belonging to a study set.
type QuizQuestion struct {
	ent.Schema
}

func (QuizQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.String("study_set").
			Comment("ID of the owning StudySet"),
		field.Text("question").
			Comment("The question prompt"),
		field.JSON("options", []string{}).
			Comment("The four answer options, in display order"),
		field.String("answer").
			Comment("The correct option, verbatim"),
		field.String("category").
			Optional().
			Comment("Resolved category name; empty when classification failed"),
		field.Text("explanation").
			Default("").
			Comment("Why the answer is correct and the distractors are not"),
	}
}

func (QuizQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("study_set"),
		index.Fields("category"),
	}
}
