package employee

import (
	"time"
)

type Employee struct {
	ID         int64
	Name       string
	Email      string
	Phone      string
	Department string
	Role       string
	JoinDate   time.Time
	Address    *string

	EmergencyContactName         *string
	EmergencyContactRelationship *string
	EmergencyContactPhone        *string
}
