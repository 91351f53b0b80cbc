package models

import "time"

type UserType string

const (
	UserTypeClient      UserType = "client"
	UserTypeVendorOwner UserType = "vendor_owner"
	UserTypeDriver      UserType = "driver"
	UserTypeEmployee    UserType = "employee"
	UserTypeAdmin       UserType = "admin"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Email     string    `gorm:"size:160;uniqueIndex;not null" json:"email"`
	Phone     string    `gorm:"size:32" json:"phone"`
	Type      UserType  `gorm:"size:20;not null;index" json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserSummary is the requester view attached to cash-out requests.
type UserSummary struct {
	ID    uint     `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Phone string   `json:"phone"`
	Type  UserType `json:"type"`
}

func (UserSummary) TableName() string {
	return "users"
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Type:  u.Type,
	}
}
