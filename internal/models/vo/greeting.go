// Package vo defines view objects exposed to upper layers.
package vo

import (
	"time"

	"github.com/bionicotaku/lingo-services-greeter/internal/models/po"
	"github.com/google/uuid"
)

// Greeting encapsulates the message returned to API consumers.
type Greeting struct {
	ID        uuid.UUID
	Suffix    string
	Message   string
	CreatedAt time.Time
}

// NewGreeting 将持久化记录转换为视图对象，nil 输入返回 nil 以便上层统一判空。
func NewGreeting(record *po.Greeting) *Greeting {
	if record == nil {
		return nil
	}
	return &Greeting{
		ID:        record.GreetingID,
		Suffix:    record.Suffix,
		Message:   record.Message,
		CreatedAt: record.CreatedAt,
	}
}

// NewGreetings 批量转换持久化记录。
func NewGreetings(records []*po.Greeting) []*Greeting {
	if len(records) == 0 {
		return nil
	}
	out := make([]*Greeting, 0, len(records))
	for _, record := range records {
		out = append(out, NewGreeting(record))
	}
	return out
}
