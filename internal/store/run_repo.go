package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/stackfour/ent"
	entrun "github.com/abhisek/stackfour/ent/evaluationrun"
	"github.com/abhisek/stackfour/internal/metrics"
)

// runRepo implements RunRepo backed by ent.
type runRepo struct {
	client *ent.Client
}

func (r *runRepo) SaveRun(ctx context.Context, run metrics.Run) error {
	summary, err := summaryToMap(run.Summary)
	if err != nil {
		return err
	}

	_, err = r.client.EvaluationRun.Create().
		SetRunID(run.ID).
		SetAlgorithmVersion(run.AlgorithmVersion).
		SetDatasetHash(run.DatasetHash).
		SetMetrics(summary).
		SetConfig(run.Config).
		SetCreatedAt(run.StartedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save evaluation run %s: %w", run.ID, err)
	}
	return nil
}

func (r *runRepo) ListRuns(ctx context.Context, limit int) ([]metrics.Run, error) {
	q := r.client.EvaluationRun.Query().
		Order(ent.Desc(entrun.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list evaluation runs: %w", err)
	}

	out := make([]metrics.Run, 0, len(rows))
	for _, row := range rows {
		summary, err := summaryFromMap(row.Metrics)
		if err != nil {
			return nil, fmt.Errorf("decode run %s: %w", row.RunID, err)
		}
		out = append(out, metrics.Run{
			ID:               row.RunID,
			AlgorithmVersion: row.AlgorithmVersion,
			DatasetHash:      row.DatasetHash,
			Summary:          summary,
			Config:           row.Config,
			StartedAt:        row.CreatedAt,
		})
	}
	return out, nil
}

// summaryToMap round-trips the summary through JSON into the generic map the
// schema stores.
func summaryToMap(s metrics.Summary) (map[string]any, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal summary: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("remap summary: %w", err)
	}
	return m, nil
}

func summaryFromMap(m map[string]any) (metrics.Summary, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return metrics.Summary{}, fmt.Errorf("marshal stored summary: %w", err)
	}
	var s metrics.Summary
	if err := json.Unmarshal(raw, &s); err != nil {
		return metrics.Summary{}, fmt.Errorf("unmarshal stored summary: %w", err)
	}
	return s, nil
}
