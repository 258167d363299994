package repository

import (
	"context"
	"encoding/json"

	"crypto_webapp/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AuditRepository is the only Postgres-backed store in the service.
// Entity state lives in memory; the audit trail is append-only and
// survives restarts when a database is configured.
type AuditRepository struct {
	db *pgxpool.Pool
}

func NewAuditRepository(db *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	details, err := json.Marshal(log.Details)
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx,
		`INSERT INTO audit_logs (user_id, action, category, details, ip, user_agent)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		log.UserID,
		log.Action,
		log.Category,
		details,
		log.IP,
		log.UserAgent,
	).Scan(&log.ID, &log.CreatedAt)
}

func (r *AuditRepository) GetByUserID(ctx context.Context, userID int64, limit int) ([]*domain.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, action, category, details, COALESCE(ip, ''), COALESCE(user_agent, ''), created_at
		 FROM audit_logs
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.AuditLog
	for rows.Next() {
		var (
			l       domain.AuditLog
			details []byte
		)
		if err := rows.Scan(&l.ID, &l.UserID, &l.Action, &l.Category, &details, &l.IP, &l.UserAgent, &l.CreatedAt); err != nil {
			return nil, err
		}
		if len(details) > 0 {
			_ = json.Unmarshal(details, &l.Details)
		}
		res = append(res, &l)
	}
	return res, rows.Err()
}
