package db

import (
	"context"
	"database/sql"
)

const postureHistoryMigration = `
CREATE TABLE IF NOT EXISTS posture_history (
    id bigserial PRIMARY KEY,
    user_id bigint NOT NULL,
    diagnosis jsonb,
    recommended_exercise text,
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS posture_history_user_id_idx
ON posture_history (user_id);
`

// RunMigration creates the posture-analysis read model consumed by the
// diagnosis resolver. The rows themselves are written by the analysis
// pipeline, not by this service.
func RunMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, postureHistoryMigration)
	return err
}
