package model

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	//サービスが発番する（IDとは別物）
	Code uuid.UUID `gorm:"type:uuid;index" json:"code"`

	Image             string    `gorm:"type:varchar(1024)" json:"image"`
	Name              string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Description       string    `gorm:"type:text" json:"description"`
	Price             int64     `gorm:"not null;index" json:"price"`
	Category          string    `gorm:"type:varchar(255);not null" json:"category"`
	Brand             string    `gorm:"type:varchar(255);index" json:"brand"`
	AvailableQuantity int64     `json:"availableQuantity"`
	CreatedAt         time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt         time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
