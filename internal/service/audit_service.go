package service

import (
	"context"

	"crypto_webapp/internal/domain"
	"crypto_webapp/internal/logger"
	"crypto_webapp/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AuditService writes the durable audit trail. Constructed with a nil
// pool it degrades to a no-op, so handlers log unconditionally and the
// database stays optional. Failures are logged and never surface to
// the action that triggered them.
type AuditService struct {
	repo *repository.AuditRepository
}

func NewAuditService(db *pgxpool.Pool) *AuditService {
	if db == nil {
		return &AuditService{}
	}
	return &AuditService{repo: repository.NewAuditRepository(db)}
}

func (s *AuditService) Enabled() bool {
	return s != nil && s.repo != nil
}

// Log creates one audit entry.
func (s *AuditService) Log(ctx context.Context, userID int64, action, category string, details map[string]any) {
	if !s.Enabled() {
		return
	}

	entry := &domain.AuditLog{
		UserID:   userID,
		Action:   action,
		Category: category,
		Details:  details,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		logger.Error("failed to create audit log", "error", err, "action", action, "user_id", userID)
	}
}

// LogWithRequest creates an audit entry with request info (IP, User-Agent).
func (s *AuditService) LogWithRequest(ctx context.Context, userID int64, action, category, ip, userAgent string, details map[string]any) {
	if !s.Enabled() {
		return
	}

	entry := &domain.AuditLog{
		UserID:    userID,
		Action:    action,
		Category:  category,
		Details:   details,
		IP:        ip,
		UserAgent: userAgent,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		logger.Error("failed to create audit log", "error", err, "action", action, "user_id", userID)
	}
}

func (s *AuditService) LogRegister(ctx context.Context, userID int64, ip, userAgent string) {
	s.LogWithRequest(ctx, userID, domain.AuditActionRegister, domain.AuditCategoryAuth, ip, userAgent, nil)
}

func (s *AuditService) LogLogin(ctx context.Context, userID int64, ip, userAgent string) {
	s.LogWithRequest(ctx, userID, domain.AuditActionLogin, domain.AuditCategoryAuth, ip, userAgent, nil)
}

func (s *AuditService) LogTrade(ctx context.Context, userID int64, action string, cryptoID, amount int64, cost float64) {
	auditAction := domain.AuditActionTradeBuy
	if action == TradeActionSell {
		auditAction = domain.AuditActionTradeSell
	}
	s.Log(ctx, userID, auditAction, domain.AuditCategoryTrade, map[string]any{
		"crypto_id": cryptoID,
		"amount":    amount,
		"cost":      cost,
	})
}

func (s *AuditService) LogMiningCollect(ctx context.Context, userID, tokensMined int64) {
	s.Log(ctx, userID, domain.AuditActionMiningCollect, domain.AuditCategoryMining, map[string]any{
		"tokens_mined": tokensMined,
	})
}

func (s *AuditService) LogMiningUpgrade(ctx context.Context, userID int64, level int) {
	s.Log(ctx, userID, domain.AuditActionMiningUpgrade, domain.AuditCategoryMining, map[string]any{
		"level": level,
	})
}

func (s *AuditService) LogPostCreate(ctx context.Context, userID, postID int64) {
	s.Log(ctx, userID, domain.AuditActionPostCreate, domain.AuditCategorySocial, map[string]any{
		"post_id": postID,
	})
}

func (s *AuditService) LogPostLike(ctx context.Context, userID, postID int64) {
	s.Log(ctx, userID, domain.AuditActionPostLike, domain.AuditCategorySocial, map[string]any{
		"post_id": postID,
	})
}

// GetUserAuditLogs returns audit entries for a user, newest first.
func (s *AuditService) GetUserAuditLogs(ctx context.Context, userID int64, limit int) ([]*domain.AuditLog, error) {
	if !s.Enabled() {
		return nil, nil
	}
	return s.repo.GetByUserID(ctx, userID, limit)
}
