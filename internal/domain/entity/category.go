package entity

import "time"

// Category representa una categoría de recursos de una empresa (tenant).
// CompanyID sale siempre del token verificado, nunca del cuerpo de la petición.
type Category struct {
	ID        int64
	CompanyID int64
	Title     string
	CreatedAt time.Time
}
