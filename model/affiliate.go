package model

import "time"

type CommissionStatus string

const (
	CommissionPending  CommissionStatus = "pending"
	CommissionApproved CommissionStatus = "approved"
	CommissionPaid     CommissionStatus = "paid"
)

type AffiliateCommission struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	AffiliateID string           `gorm:"type:varchar(36);index;not null" json:"affiliate_id"`
	OrderID     string           `gorm:"type:varchar(36);not null" json:"order_id"`
	OrderAmount int64            `gorm:"not null" json:"order_amount"`
	Amount      int64            `gorm:"not null" json:"amount"`
	Status      CommissionStatus `gorm:"type:varchar(20);index;not null" json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
}

type AffiliateSummary struct {
	AffiliateID    string `json:"affiliate_id"`
	TotalOrders    int64  `json:"total_orders"`
	TotalSales     int64  `json:"total_sales"`
	PendingAmount  int64  `json:"pending_amount"`
	ApprovedAmount int64  `json:"approved_amount"`
	PaidAmount     int64  `json:"paid_amount"`
}
