package store

import (
	"context"
	"fmt"

	"github.com/roach88/logchart/internal/chartset"
)

// RecordArtifact appends a rendered chart to the history. Recording the
// same (run ID, seq) twice keeps the first record.
func (s *Store) RecordArtifact(ctx context.Context, a chartset.Artifact) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO artifacts
		(run_id, seq, set_name, chart, kind, backend, input, path, digest)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, seq) DO NOTHING
	`,
		a.RunID,
		a.Seq,
		a.Set,
		a.Chart,
		a.Kind,
		a.Backend,
		a.Input,
		a.Path,
		a.Digest,
	)
	if err != nil {
		return fmt.Errorf("record artifact: %w", err)
	}
	return nil
}

// ListArtifacts returns the render history of runID ordered by seq, or of
// every run when runID is empty, ordered by run ID then seq. Run IDs are
// UUIDv7, so runs come out oldest first.
//
// Returns an empty slice (not nil) if nothing matches.
func (s *Store) ListArtifacts(ctx context.Context, runID string) ([]chartset.Artifact, error) {
	query := `
		SELECT run_id, seq, set_name, chart, kind, backend, input, path, digest
		FROM artifacts
	`
	var args []any
	if runID != "" {
		query += ` WHERE run_id = ?`
		args = append(args, runID)
	}
	query += ` ORDER BY run_id COLLATE BINARY ASC, seq ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query artifacts: %w", err)
	}
	defer rows.Close()

	artifacts := []chartset.Artifact{}
	for rows.Next() {
		var a chartset.Artifact
		if err := rows.Scan(&a.RunID, &a.Seq, &a.Set, &a.Chart, &a.Kind, &a.Backend, &a.Input, &a.Path, &a.Digest); err != nil {
			return nil, fmt.Errorf("scan artifact: %w", err)
		}
		artifacts = append(artifacts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artifacts: %w", err)
	}
	return artifacts, nil
}
