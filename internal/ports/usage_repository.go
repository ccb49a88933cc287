package ports

import (
	"context"
	"time"
)

// UsageEvent records one copy of a binding to the clipboard
type UsageEvent struct {
	Action string
	Combo  string
	UsedAt time.Time
}

// UsageStat is the aggregated usage of one binding
type UsageStat struct {
	Action   string
	Combo    string
	Count    int
	LastUsed time.Time
}

// UsageRecorder stores usage events
type UsageRecorder interface {
	Record(ctx context.Context, events []UsageEvent) error
}

// UsageReader reads aggregated usage
type UsageReader interface {
	TopUsed(ctx context.Context, limit int) ([]UsageStat, error)
}

// UsageRepository is the composite interface
type UsageRepository interface {
	UsageRecorder
	UsageReader
	Close() error
}
