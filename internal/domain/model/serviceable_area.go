package model

// 配送可能エリア（pincode単位）。商品サービスからは読み取り専用。
type ServiceableArea struct {
	Pincode      string `gorm:"primaryKey;type:varchar(16)" json:"pincode"`
	DeliveryTime string `gorm:"type:varchar(32)" json:"deliveryTime"`
}
