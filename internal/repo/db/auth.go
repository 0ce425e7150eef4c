package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	md "github.com/almousleck/glasslink/internal/models"
	"github.com/almousleck/glasslink/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

func (r *Repository) CreateRefreshToken(
	ctx context.Context,
	userID uuid.UUID,
	tokenHash string,
	expiresAt time.Time,
) error {
	const op = "auth.CreateRefreshToken.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, tokenCreateQ, userID, tokenHash, expiresAt)
	return err
}

func (r *Repository) DeleteRefreshTokensByUser(ctx context.Context, userID uuid.UUID) error {
	const op = "auth.DeleteRefreshTokensByUser.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, tokenDeleteByUserQ, userID)
	return err
}

// RedeemRefreshToken atomically removes the token row and returns it. At
// most one caller ever gets the row back; everyone else gets ErrNotFound.
// The returned row may already be past its expiry - the caller decides how
// to report that.
func (r *Repository) RedeemRefreshToken(ctx context.Context, tokenHash string) (*md.RefreshToken, error) {
	const op = "auth.RedeemRefreshToken.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.RefreshToken{TokenHash: tokenHash}
	err := r.conn.QueryRowxContext(ctx, tokenRedeemQ, tokenHash).
		Scan(&res.UserID, &res.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

// RevokeRefreshToken removes the token family owned by the presented
// token's identity. Unknown tokens are a silent no-op.
func (r *Repository) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	const op = "auth.RevokeRefreshToken.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, tokenRevokeQ, tokenHash)
	return err
}
