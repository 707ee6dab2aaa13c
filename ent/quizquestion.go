// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/deepak/quizdeck/ent/quizquestion"
)

// QuizQuestion is the model entity for the QuizQuestion schema.
type QuizQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ID of the owning StudySet
	StudySet string `json:"study_set,omitempty"`
	// The question prompt
	Question string `json:"question,omitempty"`
	// The four answer options, in display order
	Options []string `json:"options,omitempty"`
	// The correct option, verbatim
	Answer string `json:"answer,omitempty"`
	// Resolved category name; empty when classification failed
	Category string `json:"category,omitempty"`
	// Why the answer is correct and the distractors are not
	Explanation  string `json:"explanation,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizquestion.FieldOptions:
			values[i] = new([]byte)
		case quizquestion.FieldID:
			values[i] = new(sql.NullInt64)
		case quizquestion.FieldStudySet, quizquestion.FieldQuestion, quizquestion.FieldAnswer, quizquestion.FieldCategory, quizquestion.FieldExplanation:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizQuestion fields.
func (_m *QuizQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizquestion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quizquestion.FieldStudySet:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field study_set", values[i])
			} else if value.Valid {
				_m.StudySet = value.String
			}
		case quizquestion.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case quizquestion.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		case quizquestion.FieldAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer", values[i])
			} else if value.Valid {
				_m.Answer = value.String
			}
		case quizquestion.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case quizquestion.FieldExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value.Valid {
				_m.Explanation = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *QuizQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuizQuestion.
// Note that you need to call QuizQuestion.Unwrap() before calling this method if this QuizQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizQuestion) Update() *QuizQuestionUpdateOne {
	return NewQuizQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizQuestion) Unwrap() *QuizQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("QuizQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("study_set=")
	builder.WriteString(_m.StudySet)
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteString(", ")
	builder.WriteString("answer=")
	builder.WriteString(_m.Answer)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("explanation=")
	builder.WriteString(_m.Explanation)
	builder.WriteByte(')')
	return builder.String()
}

// QuizQuestions is a parsable slice of QuizQuestion.
type QuizQuestions []*QuizQuestion
