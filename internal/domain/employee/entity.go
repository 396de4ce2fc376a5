package employee

import (
	"time"
)

type Employee struct {
	ID         int64
	Name       string
	Position   *string
	Department *string
	Email      *string
	Phone      *string
	HireDate   *time.Time
	Salary     *float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
