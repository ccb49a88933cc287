package storage

import (
	"time"

	"github.com/hypr-showkey/showkey/internal/ports"
)

// usageEventToModel converts a ports.UsageEvent to UsageEventModel (GORM)
func usageEventToModel(e ports.UsageEvent) UsageEventModel {
	return UsageEventModel{
		Action: e.Action,
		Combo:  e.Combo,
		UsedAt: e.UsedAt.UnixMilli(),
	}
}

// usageStatRowToPort converts an aggregate row to ports.UsageStat
func usageStatRowToPort(r usageStatRow) ports.UsageStat {
	return ports.UsageStat{
		Action:   r.Action,
		Combo:    r.Combo,
		Count:    r.Count,
		LastUsed: time.UnixMilli(r.LastUsed).UTC(),
	}
}
