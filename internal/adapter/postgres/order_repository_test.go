package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"civic-orders/internal/core/domain"
)

type stubTx struct {
	pgx.Tx
	commitErr  error
	rolledBack bool
}

func (s *stubTx) Commit(ctx context.Context) error { return s.commitErr }

func (s *stubTx) Rollback(ctx context.Context) error {
	s.rolledBack = true
	return nil
}

// TestFinishTxSurfacesCommitFailure pins the contract every transactional
// method relies on through its named error return: a failed COMMIT wrote
// nothing and must reach the caller as a dependency failure, never as
// success.
func TestFinishTxSurfacesCommitFailure(t *testing.T) {
	tx := &stubTx{commitErr: errors.New("commit failed")}
	err := finishTx(context.Background(), tx, nil)
	if err == nil {
		t.Fatal("commit failure was dropped: caller saw nil")
	}
	if !errors.Is(err, domain.ErrDependency) {
		t.Fatalf("got %v, want ErrDependency", err)
	}
}

func TestFinishTxCommitsCleanly(t *testing.T) {
	tx := &stubTx{}
	if err := finishTx(context.Background(), tx, nil); err != nil {
		t.Fatalf("finishTx error: %v", err)
	}
	if tx.rolledBack {
		t.Fatal("clean commit must not roll back")
	}
}

func TestFinishTxRollsBackOnError(t *testing.T) {
	tx := &stubTx{}
	cause := errors.New("insert failed")
	if err := finishTx(context.Background(), tx, cause); !errors.Is(err, cause) {
		t.Fatalf("got %v, want the original error", err)
	}
	if !tx.rolledBack {
		t.Fatal("failed transaction must roll back")
	}
}
