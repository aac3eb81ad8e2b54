package mysql

import (
	"context"
	"errors"
	"testing"

	"loan-ledger/internal/domain/borrower"
	"loan-ledger/internal/domain/storage"
)

func TestBorrowerFindByID(t *testing.T) {
	db := openTestDB(t)
	seedBorrowers(t, db, 4)
	repo := NewBorrowerRepository(db)

	got, err := repo.FindByID(context.Background(), 4)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.ID != 4 || got.Email != "user4@example.com" || !got.ActiveStatus {
		t.Fatalf("unexpected borrower: %+v", got)
	}
}

func TestBorrowerFindByID_NotFound(t *testing.T) {
	repo := NewBorrowerRepository(openTestDB(t))

	_, err := repo.FindByID(context.Background(), 77)
	var nf *borrower.NotFoundError
	if !errors.As(err, &nf) || nf.ID != 77 {
		t.Fatalf("expected NotFoundError{77}, got %v", err)
	}
}

func TestBorrowerFindByID_StorageFault(t *testing.T) {
	db := openTestDB(t)
	sqlDB, _ := db.DB()
	_ = sqlDB.Close()

	_, err := NewBorrowerRepository(db).FindByID(context.Background(), 1)
	if !errors.Is(err, storage.ErrFault) {
		t.Fatalf("expected storage fault, got %v", err)
	}
}
