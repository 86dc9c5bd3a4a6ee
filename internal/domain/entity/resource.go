package entity

import "time"

// Resource es un recurso agendable (profesional, cancha...) clasificado en una Category.
type Resource struct {
	ID          int64
	CompanyID   int64
	CategoryID  int64
	Title       string
	Description string
	CreatedAt   time.Time
}
