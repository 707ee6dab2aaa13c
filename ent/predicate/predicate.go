// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Category is the predicate function for category builders.
type Category func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// QuizQuestion is the predicate function for quizquestion builders.
type QuizQuestion func(*sql.Selector)

// StudySet is the predicate function for studyset builders.
type StudySet func(*sql.Selector)

// Subject is the predicate function for subject builders.
type Subject func(*sql.Selector)
