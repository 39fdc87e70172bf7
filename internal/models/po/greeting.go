// Package po defines persistence-oriented data objects shared by repositories.
package po

import (
	"time"

	"github.com/google/uuid"
)

// Greeting represents one persisted greeting record.
type Greeting struct {
	GreetingID uuid.UUID
	Suffix     string
	Message    string
	CreatedAt  time.Time
}
