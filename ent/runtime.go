// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/stackfour/ent/evaluationrun"
	"github.com/abhisek/stackfour/ent/keywordstat"
	"github.com/abhisek/stackfour/ent/llmrequestevent"
	"github.com/abhisek/stackfour/ent/patternstat"
	"github.com/abhisek/stackfour/ent/predictionevent"
	"github.com/abhisek/stackfour/ent/question"
	"github.com/abhisek/stackfour/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	evaluationrunFields := schema.EvaluationRun{}.Fields()
	_ = evaluationrunFields
	// evaluationrunDescCreatedAt is the schema descriptor for created_at field.
	evaluationrunDescCreatedAt := evaluationrunFields[5].Descriptor()
	// evaluationrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	evaluationrun.DefaultCreatedAt = evaluationrunDescCreatedAt.Default.(func() time.Time)
	keywordstatFields := schema.KeywordStat{}.Fields()
	_ = keywordstatFields
	// keywordstatDescCorrect is the schema descriptor for correct field.
	keywordstatDescCorrect := keywordstatFields[1].Descriptor()
	// keywordstat.DefaultCorrect holds the default value on creation for the correct field.
	keywordstat.DefaultCorrect = keywordstatDescCorrect.Default.(int)
	// keywordstatDescIncorrect is the schema descriptor for incorrect field.
	keywordstatDescIncorrect := keywordstatFields[2].Descriptor()
	// keywordstat.DefaultIncorrect holds the default value on creation for the incorrect field.
	keywordstat.DefaultIncorrect = keywordstatDescIncorrect.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	patternstatFields := schema.PatternStat{}.Fields()
	_ = patternstatFields
	// patternstatDescCorrect is the schema descriptor for correct field.
	patternstatDescCorrect := patternstatFields[1].Descriptor()
	// patternstat.DefaultCorrect holds the default value on creation for the correct field.
	patternstat.DefaultCorrect = patternstatDescCorrect.Default.(int)
	// patternstatDescTotal is the schema descriptor for total field.
	patternstatDescTotal := patternstatFields[2].Descriptor()
	// patternstat.DefaultTotal holds the default value on creation for the total field.
	patternstat.DefaultTotal = patternstatDescTotal.Default.(int)
	predictioneventMixin := schema.PredictionEvent{}.Mixin()
	predictioneventMixinFields0 := predictioneventMixin[0].Fields()
	_ = predictioneventMixinFields0
	predictioneventFields := schema.PredictionEvent{}.Fields()
	_ = predictioneventFields
	// predictioneventDescTimestamp is the schema descriptor for timestamp field.
	predictioneventDescTimestamp := predictioneventMixinFields0[1].Descriptor()
	// predictionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	predictionevent.DefaultTimestamp = predictioneventDescTimestamp.Default.(func() time.Time)
	// predictioneventDescQuestionType is the schema descriptor for question_type field.
	predictioneventDescQuestionType := predictioneventFields[1].Descriptor()
	// predictionevent.DefaultQuestionType holds the default value on creation for the question_type field.
	predictionevent.DefaultQuestionType = predictioneventDescQuestionType.Default.(string)
	// predictioneventDescConfidence is the schema descriptor for confidence field.
	predictioneventDescConfidence := predictioneventFields[6].Descriptor()
	// predictionevent.DefaultConfidence holds the default value on creation for the confidence field.
	predictionevent.DefaultConfidence = predictioneventDescConfidence.Default.(float64)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescQuestionType is the schema descriptor for question_type field.
	questionDescQuestionType := questionFields[5].Descriptor()
	// question.DefaultQuestionType holds the default value on creation for the question_type field.
	question.DefaultQuestionType = questionDescQuestionType.Default.(string)
	// questionDescPublisher is the schema descriptor for publisher field.
	questionDescPublisher := questionFields[6].Descriptor()
	// question.DefaultPublisher holds the default value on creation for the publisher field.
	question.DefaultPublisher = questionDescPublisher.Default.(string)
	// questionDescTopic is the schema descriptor for topic field.
	questionDescTopic := questionFields[7].Descriptor()
	// question.DefaultTopic holds the default value on creation for the topic field.
	question.DefaultTopic = questionDescTopic.Default.(string)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[8].Descriptor()
	// question.DefaultDifficulty holds the default value on creation for the difficulty field.
	question.DefaultDifficulty = questionDescDifficulty.Default.(string)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[9].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
}
