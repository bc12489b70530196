package store

import (
	"context"
	"time"

	"github.com/abhisek/stackfour/internal/metrics"
	"github.com/abhisek/stackfour/internal/question"
)

// QuestionFilter narrows corpus queries. Zero values match everything.
type QuestionFilter struct {
	Format    question.Format
	Publisher string
	Limit     int
}

// QuestionRepo manages the question corpus.
type QuestionRepo interface {
	// Save upserts a question by its corpus ID.
	Save(ctx context.Context, q *question.Question) error

	// Get returns the question with the given corpus ID, or ent's
	// not-found error.
	Get(ctx context.Context, id string) (*question.Question, error)

	// List returns questions matching the filter, oldest first.
	List(ctx context.Context, f QuestionFilter) ([]*question.Question, error)

	// IDs returns every corpus ID, used for splits and dataset hashing.
	IDs(ctx context.Context) ([]string, error)
}

// RunRepo persists evaluation runs.
type RunRepo interface {
	// SaveRun stores one completed evaluation.
	SaveRun(ctx context.Context, run metrics.Run) error

	// ListRuns returns saved runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]metrics.Run, error)
}

// LLMRequestEventData captures one knowledge-lookup API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored lookup event as read back from the log.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// QueryOpts bounds event queries.
type QueryOpts struct {
	Limit int
}

// LLMUsage aggregates recorded lookup traffic for one model.
type LLMUsage struct {
	Model        string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// LLMUsageStats aggregates recorded lookup traffic for one purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides access to the lookup event log.
type EventRepo interface {
	// AppendLLMRequest records a lookup API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent lookup events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one event by row ID, or nil when absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose summarizes recorded lookups per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel summarizes recorded lookups per model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}
