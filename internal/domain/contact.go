package domain

import (
	"context"
	"time"
)

// ContactMessage is created by the public contact form and never mutated.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactRepository interface {
	Create(ctx context.Context, msg *ContactMessage) error
	List(ctx context.Context) ([]ContactMessage, error)
	Delete(ctx context.Context, id int64) error
}

type ContactUsecase interface {
	SubmitContact(ctx context.Context, msg *ContactMessage) error
}
