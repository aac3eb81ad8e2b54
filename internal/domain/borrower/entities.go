package borrower

import (
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("borrower not found")

// NotFoundError names the borrower id that could not be resolved.
type NotFoundError struct{ ID uint64 }

func (e *NotFoundError) Error() string { return fmt.Sprintf("borrower %d not found", e.ID) }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Table: users. Owned by the user directory; loans only reference it.
type Borrower struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FirstName    string    `gorm:"column:first_name;size:64" json:"firstName"`
	LastName     string    `gorm:"column:last_name;size:64" json:"lastName"`
	Email        string    `gorm:"column:email;size:128;uniqueIndex" json:"email"`
	ActiveStatus bool      `gorm:"column:active_status" json:"activeStatus"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Borrower) TableName() string { return "users" }
