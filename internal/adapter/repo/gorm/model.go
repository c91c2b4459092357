package gormrepo

import "time"

// vehicleRow mirrors the indexer's view of the garage contract. The
// indexer writes rows as transfer and attribute events land; this adapter
// only reads them.
type vehicleRow struct {
	ID           uint64 `gorm:"primaryKey"`
	Owner        string `gorm:"index;size:64"`
	Name         string
	Speed        int
	Handling     int
	Acceleration int
	Color        string
	IsStaked     bool
	UpdatedAt    time.Time
}

func (vehicleRow) TableName() string { return "vehicles" }
