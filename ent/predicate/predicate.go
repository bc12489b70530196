// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// EvaluationRun is the predicate function for evaluationrun builders.
type EvaluationRun func(*sql.Selector)

// KeywordStat is the predicate function for keywordstat builders.
type KeywordStat func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// PatternStat is the predicate function for patternstat builders.
type PatternStat func(*sql.Selector)

// PredictionEvent is the predicate function for predictionevent builders.
type PredictionEvent func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)
