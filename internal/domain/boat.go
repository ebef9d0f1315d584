package domain

import (
	"context"
	"time"
)

type Boat struct {
	ID              int
	Name            string
	Description     string
	NominalCapacity int
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type BoatRepository interface {
	GetAll(ctx context.Context) ([]*Boat, error)
	GetById(ctx context.Context, id int) (*Boat, error)
	Create(ctx context.Context, boat *Boat) error
	Update(ctx context.Context, boat *Boat) error
}
