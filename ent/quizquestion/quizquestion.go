// Code generated by ent, DO NOT EDIT.

package quizquestion

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quizquestion type in the database.
	Label = "quiz_question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudySet holds the string denoting the study_set field in the database.
	FieldStudySet = "study_set"
	// FieldQuestion holds the string denoting the question field in the database.
	FieldQuestion = "question"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// FieldAnswer holds the string denoting the answer field in the database.
	FieldAnswer = "answer"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldExplanation holds the string denoting the explanation field in the database.
	FieldExplanation = "explanation"
	// Table holds the table name of the quizquestion in the database.
	Table = "quiz_questions"
)

// Columns holds all SQL columns for quizquestion fields.
var Columns = []string{
	FieldID,
	FieldStudySet,
	FieldQuestion,
	FieldOptions,
	FieldAnswer,
	FieldCategory,
	FieldExplanation,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultExplanation holds the default value on creation for the "explanation" field.
	DefaultExplanation string
)

// OrderOption defines the ordering options for the QuizQuestion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudySet orders the results by the study_set field.
func ByStudySet(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudySet, opts...).ToFunc()
}

// ByQuestion orders the results by the question field.
func ByQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestion, opts...).ToFunc()
}

// ByAnswer orders the results by the answer field.
func ByAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswer, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByExplanation orders the results by the explanation field.
func ByExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplanation, opts...).ToFunc()
}
