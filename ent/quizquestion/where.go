// Code generated by ent, DO NOT EDIT.

package quizquestion

import (
	"entgo.io/ent/dialect/sql"
	"github.com/deepak/quizdeck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLTE(FieldID, id))
}

// StudySet applies equality check predicate on the "study_set" field. It's identical to StudySetEQ.
func StudySet(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldStudySet, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldQuestion, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldAnswer, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldCategory, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldExplanation, v))
}

// StudySetEQ applies the EQ predicate on the "study_set" field.
func StudySetEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldStudySet, v))
}

// StudySetNEQ applies the NEQ predicate on the "study_set" field.
func StudySetNEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNEQ(FieldStudySet, v))
}

// StudySetIn applies the In predicate on the "study_set" field.
func StudySetIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldIn(FieldStudySet, vs...))
}

// StudySetNotIn applies the NotIn predicate on the "study_set" field.
func StudySetNotIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNotIn(FieldStudySet, vs...))
}

// StudySetGT applies the GT predicate on the "study_set" field.
func StudySetGT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGT(FieldStudySet, v))
}

// StudySetGTE applies the GTE predicate on the "study_set" field.
func StudySetGTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGTE(FieldStudySet, v))
}

// StudySetLT applies the LT predicate on the "study_set" field.
func StudySetLT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLT(FieldStudySet, v))
}

// StudySetLTE applies the LTE predicate on the "study_set" field.
func StudySetLTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLTE(FieldStudySet, v))
}

// StudySetContains applies the Contains predicate on the "study_set" field.
func StudySetContains(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContains(FieldStudySet, v))
}

// StudySetHasPrefix applies the HasPrefix predicate on the "study_set" field.
func StudySetHasPrefix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasPrefix(FieldStudySet, v))
}

// StudySetHasSuffix applies the HasSuffix predicate on the "study_set" field.
func StudySetHasSuffix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasSuffix(FieldStudySet, v))
}

// StudySetEqualFold applies the EqualFold predicate on the "study_set" field.
func StudySetEqualFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEqualFold(FieldStudySet, v))
}

// StudySetContainsFold applies the ContainsFold predicate on the "study_set" field.
func StudySetContainsFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContainsFold(FieldStudySet, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContainsFold(FieldQuestion, v))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContainsFold(FieldAnswer, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContainsFold(FieldCategory, v))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.FieldContainsFold(FieldExplanation, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizQuestion) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizQuestion) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizQuestion) predicate.QuizQuestion {
	return predicate.QuizQuestion(sql.NotPredicates(p))
}
