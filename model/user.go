package model

import "time"

// Role is the permission level stored on a user row.
type Role string

const (
	RoleCustomer  Role = "customer"
	RoleAffiliate Role = "affiliate"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleAffiliate, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name         string    `gorm:"type:varchar(120)" json:"name"`
	Email        string    `gorm:"type:varchar(191);uniqueIndex" json:"email"`
	Phone        string    `gorm:"type:varchar(20);index" json:"phone,omitempty"`
	Role         Role      `gorm:"type:varchar(20);not null" json:"role"`
	IsBlocked    bool      `gorm:"not null" json:"is_blocked"`
	ReferralCode string    `gorm:"type:varchar(32);index" json:"referral_code,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type BlockUserRequest struct {
	Blocked bool `json:"blocked"`
}

type ChangeRoleRequest struct {
	Role Role `json:"role" binding:"required"`
}
