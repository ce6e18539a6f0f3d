package model

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ SubmissionsModel = (*defaultSubmissionsModel)(nil)

// ErrNotFound aliases the sqlx sentinel for callers that do not import sqlx.
var ErrNotFound = sqlx.ErrNotFound

// Submission is one audit row of a sandbox run.
type Submission struct {
	ID        int64     `db:"id"`
	Digest    string    `db:"digest"`
	Feature   string    `db:"feature"`
	Provider  string    `db:"provider"`
	Language  string    `db:"language"`
	ErrorCode int       `db:"error_code"`
	Result    int       `db:"result"`
	Category  string    `db:"category"`
	CreatedAt time.Time `db:"created_at"`
}

type (
	// SubmissionsModel records finished runs and serves recent history.
	SubmissionsModel interface {
		Insert(ctx context.Context, s *Submission) error
		FindLatestByDigest(ctx context.Context, digest string) (*Submission, error)
		RecentByLanguage(ctx context.Context, language string, limit int) ([]Submission, error)
	}

	defaultSubmissionsModel struct {
		conn  sqlx.SqlConn
		table string
	}
)

// NewSubmissionsModel returns a model for the submissions table.
func NewSubmissionsModel(conn sqlx.SqlConn) SubmissionsModel {
	return &defaultSubmissionsModel{conn: conn, table: "submissions"}
}

var submissionColumns = strings.Join([]string{
	"id", "digest", "feature", "provider", "language",
	"error_code", "result", "category", "created_at",
}, ", ")

func (m *defaultSubmissionsModel) Insert(ctx context.Context, s *Submission) error {
	if s == nil {
		return errors.New("model: submission is required")
	}
	query := fmt.Sprintf(`insert into %s
		(digest, feature, provider, language, error_code, result, category, created_at)
		values ($1, $2, $3, $4, $5, $6, $7, $8)`, m.table)
	created := s.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err := m.conn.ExecCtx(ctx, query,
		s.Digest, s.Feature, s.Provider, s.Language,
		s.ErrorCode, s.Result, s.Category, created)
	if err != nil {
		return fmt.Errorf("model: insert submission: %w", err)
	}
	return nil
}

func (m *defaultSubmissionsModel) FindLatestByDigest(ctx context.Context, digest string) (*Submission, error) {
	query := fmt.Sprintf(`select %s from %s where digest = $1
		order by created_at desc limit 1`, submissionColumns, m.table)
	var s Submission
	err := m.conn.QueryRowCtx(ctx, &s, query, digest)
	switch {
	case err == nil:
		return &s, nil
	case errors.Is(err, sqlx.ErrNotFound) || errors.Is(err, sql.ErrNoRows):
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("model: find submission by digest: %w", err)
	}
}

func (m *defaultSubmissionsModel) RecentByLanguage(ctx context.Context, language string, limit int) ([]Submission, error) {
	if limit <= 0 {
		limit = 20
	}
	query := fmt.Sprintf(`select %s from %s where language = $1
		order by created_at desc limit %d`, submissionColumns, m.table, limit)
	var rows []Submission
	if err := m.conn.QueryRowsCtx(ctx, &rows, query, language); err != nil {
		return nil, fmt.Errorf("model: recent submissions: %w", err)
	}
	return rows, nil
}
