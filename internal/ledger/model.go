// Package ledger is the append-only order log: the spreadsheet of record,
// kept as a single table. Rows are only ever inserted; status changes happen
// out of band by whoever works the orders.
package ledger

import "time"

// OrderRow is one accepted order. Every row carries the full column set;
// cells that do not apply to the item's branch hold an explicit sentinel.
type OrderRow struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Timestamp      time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
	Status         string    `gorm:"size:32;not null" json:"status"`
	ItemType       string    `gorm:"size:32;not null;index" json:"item_type"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Email          string    `gorm:"size:255;not null" json:"email"`
	Phone          string    `gorm:"size:64" json:"phone"`
	DeliveryMethod string    `gorm:"size:16" json:"delivery_method"`
	TargetDate     string    `gorm:"size:64" json:"target_date"`
	Budget         string    `gorm:"size:255" json:"budget"`
	Notes          string    `gorm:"type:text" json:"notes"`
	ReferralSource string    `gorm:"size:255" json:"referral_source"`
	Size           string    `gorm:"size:64" json:"size"`
	Quantity       string    `gorm:"size:32" json:"quantity"`
	Flavors        string    `gorm:"size:255" json:"flavors"`
	Fillings       string    `gorm:"size:255" json:"fillings"`
	FrostingType   string    `gorm:"size:32" json:"frosting_type"`
	SMBCFlavor     string    `gorm:"size:64" json:"smbc_flavor"`
	Theme          string    `gorm:"size:128" json:"theme"`
	Colors         string    `gorm:"size:128" json:"colors"`
}

// TableName pins the table name regardless of GORM pluralization rules.
func (OrderRow) TableName() string { return "order_ledger" }
