package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/almousleck/glasslink/internal/dto"
	md "github.com/almousleck/glasslink/internal/models"
	"github.com/almousleck/glasslink/internal/repo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/opentracing/opentracing-go"
)

const uniqueViolation = "23505"

func (r *Repository) GetUserByIdentifier(ctx context.Context, identifier string) (*md.User, error) {
	const op = "users.GetUserByIdentifier.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.User{}
	err := r.conn.GetContext(ctx, res, userGetByIdentifierQ, identifier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetUserByPhone(ctx context.Context, phone string) (*md.User, error) {
	const op = "users.GetUserByPhone.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.User{}
	err := r.conn.GetContext(ctx, res, userGetByPhoneQ, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetUserByID(ctx context.Context, userID uuid.UUID) (*md.User, error) {
	const op = "users.GetUserByID.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &md.User{}
	err := r.conn.GetContext(ctx, res, userGetByIDQ, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) CreateUser(ctx context.Context, req *dto.RegisterRequest, hash, role string) (uuid.UUID, error) {
	const op = "users.CreateUser.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uuid.UUID
	err := r.conn.QueryRowxContext(
		ctx, userCreateQ, req.Username, req.Phone, hash, role,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return uuid.Nil, repo.ErrAlreadyExists
		}
		return uuid.Nil, err
	}

	return id, nil
}

func (r *Repository) UpdatePassword(ctx context.Context, userID uuid.UUID, hash string) error {
	const op = "users.UpdatePassword.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, userUpdatePasswordQ, userID, hash)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) SetPhoneVerified(ctx context.Context, phone string) error {
	const op = "users.SetPhoneVerified.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, userSetPhoneVerifiedQ, phone)
	if err != nil {
		return err
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

// IncrementFailedAttempts bumps the counter atomically and reports the new
// value along with the identity it belongs to.
func (r *Repository) IncrementFailedAttempts(ctx context.Context, identifier string) (uuid.UUID, string, int, error) {
	const op = "users.IncrementFailedAttempts.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var (
		id       uuid.UUID
		phone    string
		attempts int
	)
	err := r.conn.QueryRowxContext(ctx, userIncrementFailedQ, identifier).
		Scan(&id, &phone, &attempts)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, "", 0, repo.ErrNotFound
		}
		return uuid.Nil, "", 0, err
	}

	return id, phone, attempts, nil
}

func (r *Repository) LockUser(ctx context.Context, userID uuid.UUID, at time.Time) error {
	const op = "users.LockUser.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, userLockQ, userID, at)
	return err
}

// ResetLockout clears the counter and lock state. A zero row count is not
// an error: resetting an unknown or already-clean identity is a no-op.
func (r *Repository) ResetLockout(ctx context.Context, identifier string) error {
	const op = "users.ResetLockout.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, userResetLockoutQ, identifier)
	return err
}
