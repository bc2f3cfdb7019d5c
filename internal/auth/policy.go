package auth

import (
	"marketplace/internal/domain"

	"github.com/google/uuid"
)

// Principal is the authenticated caller as seen by the policy. A nil
// *Principal means the request carried no valid session.
type Principal struct {
	ID           uuid.UUID
	Role         domain.Role
	VendorStatus domain.VendorStatus
}

// PrincipalOf builds the policy view of a stored user.
func PrincipalOf(u *domain.User) *Principal {
	if u == nil {
		return nil
	}
	p := &Principal{ID: u.ID, Role: u.Role}
	if vs, ok := u.Vendor(); ok {
		p.VendorStatus = vs
	}
	return p
}

type Action string

const (
	ActionListPublic        Action = "catalog.list_public"
	ActionViewProduct       Action = "product.view"
	ActionListMyProducts    Action = "product.list_mine"
	ActionCreateProduct     Action = "product.create"
	ActionUpdateProduct     Action = "product.update"
	ActionDeleteProduct     Action = "product.delete"
	ActionListMyFactories   Action = "factory.list_mine"
	ActionCreateFactory     Action = "factory.create"
	ActionUpdateFactory     Action = "factory.update"
	ActionDeleteFactory     Action = "factory.delete"
	ActionManageBrand       Action = "brand.manage"
	ActionCreateOrder       Action = "order.create"
	ActionViewOrders        Action = "order.view_mine"
	ActionViewProfile       Action = "profile.view"
	ActionUpdateProfile     Action = "profile.update"
	ActionViewNotifications Action = "notification.view"
	ActionListVendors       Action = "vendor.list"
	ActionApproveVendor     Action = "vendor.approve"
	ActionRejectVendor      Action = "vendor.reject"
	ActionVendorStats       Action = "stats.vendor"
	ActionPlatformStats     Action = "stats.platform"
	ActionUpdateSettings    Action = "settings.update"
)

// Resource is the record an action targets.
type Resource struct {
	OwnerID uuid.UUID
	Public  bool
}

type Reason int

const (
	ReasonNone Reason = iota
	ReasonUnauthenticated
	ReasonForbidden
	ReasonVendorPending
	ReasonVendorRejected
	ReasonNotOwner
)

func (r Reason) String() string {
	switch r {
	case ReasonUnauthenticated:
		return "unauthenticated"
	case ReasonForbidden:
		return "forbidden"
	case ReasonVendorPending:
		return "vendor pending"
	case ReasonVendorRejected:
		return "vendor rejected"
	case ReasonNotOwner:
		return "not owner"
	default:
		return "allowed"
	}
}

type Decision struct {
	Allowed bool
	Reason  Reason
}

var allow = Decision{Allowed: true}

func deny(r Reason) Decision { return Decision{Reason: r} }

// Err converts a denial into the error surfaced to the caller. Ownership
// denials read as "not found" so one seller cannot probe another's catalog.
func (d Decision) Err() error {
	switch d.Reason {
	case ReasonNone:
		return nil
	case ReasonUnauthenticated:
		return domain.ErrUnauthenticated
	case ReasonVendorPending:
		return domain.ErrVendorPending
	case ReasonVendorRejected:
		return domain.ErrVendorRejected
	case ReasonNotOwner:
		return domain.ErrNotFoundOrNotOwned
	default:
		return domain.ErrForbidden
	}
}

type rule struct {
	// open actions need no session.
	open bool
	// openIfPublic actions need no session when the resource is public.
	openIfPublic bool
	// roles restricts the action; empty means any authenticated principal.
	roles []domain.Role
	// capability requires an approved seller.
	capability bool
	// owned requires the principal to own the resource.
	owned bool
	// adminSeesAll lets the admin pass the ownership check.
	adminSeesAll bool
	// masked reports ownership failures as ReasonNotOwner instead of
	// ReasonForbidden.
	masked bool
}

var (
	sellerOnly   = []domain.Role{domain.RoleSeller}
	customerOnly = []domain.Role{domain.RoleCustomer}
	adminOnly    = []domain.Role{domain.RoleAdmin}
)

var rules = map[Action]rule{
	ActionListPublic:        {open: true},
	ActionViewProduct:       {openIfPublic: true, owned: true, masked: true},
	ActionListMyProducts:    {roles: sellerOnly},
	ActionCreateProduct:     {roles: sellerOnly, capability: true},
	ActionUpdateProduct:     {roles: sellerOnly, capability: true, owned: true, masked: true},
	ActionDeleteProduct:     {roles: sellerOnly, capability: true, owned: true, masked: true},
	ActionListMyFactories:   {roles: sellerOnly},
	ActionCreateFactory:     {roles: sellerOnly, capability: true},
	ActionUpdateFactory:     {roles: sellerOnly, capability: true, owned: true, masked: true},
	ActionDeleteFactory:     {roles: sellerOnly, capability: true, owned: true, masked: true},
	ActionManageBrand:       {roles: sellerOnly},
	ActionCreateOrder:       {roles: customerOnly},
	ActionViewOrders:        {roles: customerOnly},
	ActionViewProfile:       {},
	ActionUpdateProfile:     {},
	ActionViewNotifications: {},
	ActionListVendors:       {roles: adminOnly},
	ActionApproveVendor:     {roles: adminOnly},
	ActionRejectVendor:      {roles: adminOnly},
	ActionVendorStats:       {roles: []domain.Role{domain.RoleAdmin, domain.RoleSeller}, owned: true, adminSeesAll: true},
	ActionPlatformStats:     {roles: adminOnly},
	ActionUpdateSettings:    {roles: adminOnly},
}

// Authorize decides whether p may perform action on res. It performs no I/O
// and is the only place role, vendor state and ownership are evaluated.
// res may be nil for actions that do not target a specific record.
func Authorize(p *Principal, action Action, res *Resource) Decision {
	r, ok := rules[action]
	if !ok {
		return deny(ReasonForbidden)
	}

	if r.open || (r.openIfPublic && res != nil && res.Public) {
		return allow
	}
	if p == nil {
		return deny(ReasonUnauthenticated)
	}

	if len(r.roles) > 0 && !hasRole(r.roles, p.Role) {
		return deny(ReasonForbidden)
	}

	if r.capability {
		if p.Role != domain.RoleSeller {
			return deny(ReasonForbidden)
		}
		switch p.VendorStatus {
		case domain.VendorApproved:
		case domain.VendorRejected:
			return deny(ReasonVendorRejected)
		default:
			return deny(ReasonVendorPending)
		}
	}

	if r.owned {
		if r.adminSeesAll && p.Role == domain.RoleAdmin {
			return allow
		}
		if res == nil || res.OwnerID != p.ID {
			if r.masked {
				return deny(ReasonNotOwner)
			}
			return deny(ReasonForbidden)
		}
	}

	return allow
}

func hasRole(roles []domain.Role, role domain.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
