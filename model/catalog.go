package model

import "time"

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(120);not null" json:"name"`
	Slug      string    `gorm:"type:varchar(160);uniqueIndex;not null" json:"slug"`
	ParentID  *uint     `gorm:"index" json:"parent_id,omitempty"`
	SortOrder int       `gorm:"not null" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Product prices are stored in toman.
type Product struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(200);not null" json:"name"`
	Slug          string    `gorm:"type:varchar(220);uniqueIndex;not null" json:"slug"`
	Description   string    `gorm:"type:text" json:"description"`
	Price         int64     `gorm:"not null" json:"price"`
	DiscountPrice *int64    `json:"discount_price,omitempty"`
	Stock         int       `gorm:"not null" json:"stock"`
	CategoryID    uint      `gorm:"index;not null" json:"category_id"`
	Category      *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	IsActive      bool      `gorm:"not null;index" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FinalPrice is the discounted price when a valid discount is set.
func (p Product) FinalPrice() int64 {
	if p.DiscountPrice != nil && *p.DiscountPrice > 0 && *p.DiscountPrice < p.Price {
		return *p.DiscountPrice
	}
	return p.Price
}
