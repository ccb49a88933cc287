package storage

// UsageEventModel is the GORM model for usage_events table
type UsageEventModel struct {
	Action string `gorm:"not null;index:idx_combo_action,priority:2"`
	Combo  string `gorm:"not null;index:idx_combo_action,priority:1"`
	ID     uint   `gorm:"primaryKey"`
	UsedAt int64  `gorm:"not null;index:idx_used_at"` // unix milliseconds
}

// TableName specifies the table name for GORM
func (UsageEventModel) TableName() string { return "usage_events" }

// usageStatRow is the aggregate row read by TopUsed
type usageStatRow struct {
	Action   string
	Combo    string
	Count    int
	LastUsed int64
}
