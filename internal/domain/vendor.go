package domain

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VendorStatus is the approval state of a seller account. The zero value is
// VendorPending so a seller whose state was never recorded is never treated
// as approved.
type VendorStatus uint8

const (
	VendorPending VendorStatus = iota
	VendorApproved
	VendorRejected
)

func (s VendorStatus) String() string {
	switch s {
	case VendorApproved:
		return "approved"
	case VendorRejected:
		return "rejected"
	default:
		return "pending"
	}
}

// ParseVendorStatus maps the stored representation back to a state.
func ParseVendorStatus(v string) (VendorStatus, error) {
	switch v {
	case "pending":
		return VendorPending, nil
	case "approved":
		return VendorApproved, nil
	case "rejected":
		return VendorRejected, nil
	}
	return VendorPending, ErrInvalidInput.WithMessage("unknown vendor status %q", v)
}

func (s VendorStatus) Terminal() bool {
	return s == VendorApproved || s == VendorRejected
}

// CanTransitionTo reports whether an admin decision may move a seller from s
// to next. Decisions are final; nothing leads back to pending.
func (s VendorStatus) CanTransitionTo(next VendorStatus) bool {
	return s == VendorPending && next.Terminal()
}

func (s VendorStatus) Value() (driver.Value, error) {
	return s.String(), nil
}

// Scan reads NULL, empty and unrecognised values as pending.
func (s *VendorStatus) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = VendorPending
		return nil
	case []byte:
		return s.scanString(string(v))
	case string:
		return s.scanString(v)
	default:
		return fmt.Errorf("vendor status: unsupported scan type %T", src)
	}
}

func (s *VendorStatus) scanString(v string) error {
	parsed, err := ParseVendorStatus(v)
	if err != nil {
		*s = VendorPending
		return nil
	}
	*s = parsed
	return nil
}

func (s VendorStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *VendorStatus) UnmarshalText(b []byte) error {
	parsed, err := ParseVendorStatus(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// VendorStats is the per-seller aggregate.
type VendorStats struct {
	VendorID      uuid.UUID `json:"vendorId"`
	ProductCount  int64     `json:"productCount"`
	CustomerCount int       `json:"customerCount"`
}

// VendorDetail is what the admin vendor screens show.
type VendorDetail struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	City          string    `json:"city,omitempty"`
	Logo          string    `json:"logo,omitempty"`
	VendorStatus  string    `json:"vendorStatus"`
	ProductCount  int64     `json:"productCount"`
	CustomerCount int       `json:"customerCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

func NewVendorDetail(u *User, stats VendorStats) VendorDetail {
	return VendorDetail{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Phone:         u.Phone,
		Address:       u.Address,
		City:          u.City,
		Logo:          u.Logo,
		VendorStatus:  u.VendorStatus.String(),
		ProductCount:  stats.ProductCount,
		CustomerCount: stats.CustomerCount,
		CreatedAt:     u.CreatedAt,
	}
}
