// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/deepak/quizdeck/ent/studyset"
)

// StudySet is the model entity for the StudySet schema.
type StudySet struct {
	config `json:"-"`
	// ID of the ent.
	// Opaque identifier assigned at creation
	ID string `json:"id,omitempty"`
	// Human-facing set name
	Name string `json:"name,omitempty"`
	// Whether the set was produced by the generation pipeline
	Generated bool `json:"generated,omitempty"`
	// When the set was persisted
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudySet) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studyset.FieldGenerated:
			values[i] = new(sql.NullBool)
		case studyset.FieldID, studyset.FieldName:
			values[i] = new(sql.NullString)
		case studyset.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudySet fields.
func (_m *StudySet) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studyset.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case studyset.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case studyset.FieldGenerated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field generated", values[i])
			} else if value.Valid {
				_m.Generated = value.Bool
			}
		case studyset.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudySet.
// This includes values selected through modifiers, order, etc.
func (_m *StudySet) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StudySet.
// Note that you need to call StudySet.Unwrap() before calling this method if this StudySet
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudySet) Update() *StudySetUpdateOne {
	return NewStudySetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudySet entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudySet) Unwrap() *StudySet {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudySet is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudySet) String() string {
	var builder strings.Builder
	builder.WriteString("StudySet(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("generated=")
	builder.WriteString(fmt.Sprintf("%v", _m.Generated))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StudySets is a parsable slice of StudySet.
type StudySets []*StudySet
