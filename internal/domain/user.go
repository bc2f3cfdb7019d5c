package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
	ShippingSameDay  ShippingMethod = "same-day"
)

func (m ShippingMethod) Valid() bool {
	switch m {
	case ShippingStandard, ShippingExpress, ShippingSameDay:
		return true
	}
	return false
}

const DefaultLogo = "/placeholder-brand-logo.png"

type User struct {
	ID             uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Name           string         `json:"name" gorm:"size:100;not null"`
	Email          string         `json:"email" gorm:"size:255;not null;uniqueIndex:idx_users_email"`
	PasswordHash   string         `json:"-" gorm:"column:password_hash;not null"`
	Phone          string         `json:"phone,omitempty" gorm:"size:32;index"`
	Address        string         `json:"address,omitempty" gorm:"size:255"`
	City           string         `json:"city,omitempty" gorm:"size:100"`
	Logo           string         `json:"logo,omitempty" gorm:"size:255"`
	Role           Role           `json:"role" gorm:"type:enum('customer','seller','admin');default:'customer';not null"`
	VendorStatus   VendorStatus   `json:"-" gorm:"type:varchar(16)"`
	ShippingMethod ShippingMethod `json:"shippingMethod" gorm:"type:varchar(16);default:'standard'"`
	// AdminSlot is 1 for the administrator and NULL for everyone else. A
	// unique index on it makes a second admin row impossible.
	AdminSlot *uint8    `json:"-" gorm:"uniqueIndex:idx_users_admin_slot"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.ShippingMethod == "" {
		u.ShippingMethod = ShippingStandard
	}
	if u.Logo == "" {
		u.Logo = DefaultLogo
	}
	return nil
}

// IsSeller reports whether the vendor status of u is meaningful.
func (u *User) IsSeller() bool { return u.Role == RoleSeller }

// Vendor returns the seller's lifecycle state. The second result is false
// for customers and admins, who have no vendor state.
func (u *User) Vendor() (VendorStatus, bool) {
	if !u.IsSeller() {
		return VendorPending, false
	}
	return u.VendorStatus, true
}

// UserSummary is the public projection returned alongside tokens and by the
// admin vendor endpoints.
type UserSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Role         Role      `json:"role"`
	VendorStatus *string   `json:"vendorStatus,omitempty"`
}

func (u *User) Summary() UserSummary {
	s := UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  u.Role,
	}
	if vs, ok := u.Vendor(); ok {
		str := vs.String()
		s.VendorStatus = &str
	}
	return s
}

// Profile is the self-view returned by the "me" endpoints.
type Profile struct {
	UserSummary
	Address        string         `json:"address,omitempty"`
	City           string         `json:"city,omitempty"`
	Logo           string         `json:"logo,omitempty"`
	ShippingMethod ShippingMethod `json:"shippingMethod"`
	CreatedAt      time.Time      `json:"createdAt"`
}

func (u *User) Profile() Profile {
	return Profile{
		UserSummary:    u.Summary(),
		Address:        u.Address,
		City:           u.City,
		Logo:           u.Logo,
		ShippingMethod: u.ShippingMethod,
		CreatedAt:      u.CreatedAt,
	}
}

// Brand is the public face of a seller.
type Brand struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	City  string    `json:"city,omitempty"`
	Logo  string    `json:"logo,omitempty"`
}

func (u *User) Brand() Brand {
	return Brand{ID: u.ID, Name: u.Name, Email: u.Email, City: u.City, Logo: u.Logo}
}

// ProfileUpdate carries the self-service profile fields. Nil fields are left
// untouched.
type ProfileUpdate struct {
	Name           *string
	Email          *string
	Phone          *string
	Address        *string
	City           *string
	Logo           *string
	ShippingMethod *ShippingMethod
}

func (p ProfileUpdate) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Address == nil &&
		p.City == nil && p.Logo == nil && p.ShippingMethod == nil
}

// NormalizeEmail lower-cases and trims an email so uniqueness is
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
