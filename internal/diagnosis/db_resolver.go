package diagnosis

import (
	"context"
	"database/sql"
	"encoding/json"

	"chat-service/internal/db"
	"chat-service/internal/logger"
)

// DBResolver reads posture-analysis records from the platform database.
type DBResolver struct {
	db *db.DB
}

func NewDBResolver(db *db.DB) *DBResolver {
	return &DBResolver{db: db}
}

func (r *DBResolver) Resolve(ctx context.Context, historyID int64) (Context, error) {

	var rawDiagnosis, exercise sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT diagnosis, recommended_exercise
		FROM posture_history
		WHERE id = $1
	`, historyID).Scan(&rawDiagnosis, &exercise)

	if err == sql.ErrNoRows {
		return Context{}, ErrNotFound
	}
	if err != nil {
		return Context{}, err
	}

	return Context{
		Diagnosis:           compactDiagnosis(historyID, rawDiagnosis.String),
		RecommendedExercise: exercise.String,
	}, nil
}

// compactDiagnosis validates the stored JSON payload. A malformed payload
// reads as an empty diagnosis rather than failing the request.
func compactDiagnosis(historyID int64, raw string) string {
	if raw == "" {
		return ""
	}

	if !json.Valid([]byte(raw)) {
		logger.Error("malformed diagnosis payload, using empty context",
			"history_id", historyID)
		return ""
	}
	return raw
}
