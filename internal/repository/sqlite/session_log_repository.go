package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/abeage1/earwise/internal/catalog"
	"github.com/abeage1/earwise/internal/logger"
	"github.com/abeage1/earwise/internal/models"
	"github.com/abeage1/earwise/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type sessionLogRepository struct {
	db *sql.DB
}

// NewSessionLogRepository creates a new SessionLogRepository implementation
func NewSessionLogRepository(db *sql.DB) repository.SessionLogRepository {
	return &sessionLogRepository{db: db}
}

func (r *sessionLogRepository) Insert(ctx context.Context, rec models.SessionRecord) error {
	log := logger.FromContext(ctx).WithPrefix("session_log_repo")
	log.Debug("inserting session record: domain=%s, correct=%d, total=%d", rec.Domain, rec.Correct, rec.Total)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO session_log (domain, correct, total, new_unlocks, finished_at)
VALUES (?, ?, ?, ?, ?)
`, string(rec.Domain), rec.Correct, rec.Total, rec.NewUnlocks, rec.Date)
	if err != nil {
		log.Error("failed to insert session record: %v", err)
	}
	return err
}

func (r *sessionLogRepository) List(ctx context.Context, filter repository.SessionLogFilter) ([]models.SessionRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("session_log_repo")
	log.Debug("listing session records: domain=%s, limit=%d", filter.Domain, filter.Limit)

	query := sqlBuilder.Select("domain", "correct", "total", "new_unlocks", "finished_at").
		From("session_log").
		OrderBy("finished_at DESC")

	if filter.Domain != "" {
		query = query.Where(squirrel.Eq{"domain": string(filter.Domain)})
	}
	if filter.Since != nil {
		query = query.Where(squirrel.GtOrEq{"finished_at": *filter.Since})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build session log query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query session log: %v", err)
		return nil, err
	}
	defer rows.Close()

	var records []models.SessionRecord
	for rows.Next() {
		var rec models.SessionRecord
		var domain string
		if err := rows.Scan(&domain, &rec.Correct, &rec.Total, &rec.NewUnlocks, &rec.Date); err != nil {
			log.Error("failed to scan session record: %v", err)
			return nil, err
		}
		rec.Domain = catalog.Domain(domain)
		records = append(records, rec)
	}
	log.Debug("found %d session records", len(records))
	return records, rows.Err()
}
