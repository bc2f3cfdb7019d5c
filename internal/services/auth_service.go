package services

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"marketplace/internal/domain"
	"marketplace/internal/infra/cache"
	rabbit "marketplace/internal/infra/rabbitmq"
	"marketplace/internal/repository"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) (bool, error)
}

type TokenIssuer interface {
	Issue(id uuid.UUID) (string, error)
}

// AuthService is the identity and credential store: registration, login and
// the admin bootstrap.
type AuthService struct {
	cacheSlot
	users       repository.UserRepository
	hasher      PasswordHasher
	tokens      TokenIssuer
	publisher   rabbit.PublisherInterface
	adminSecret string
}

func NewAuthService(users repository.UserRepository, hasher PasswordHasher, tokens TokenIssuer, pub rabbit.PublisherInterface, adminSecret string) *AuthService {
	return &AuthService{
		users:       users,
		hasher:      hasher,
		tokens:      tokens,
		publisher:   pub,
		adminSecret: adminSecret,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
	City     string
	Role     domain.Role
}

type LoginInput struct {
	Email    string
	Phone    string
	Password string
}

type RegisterAdminInput struct {
	Name       string
	Email      string
	Password   string
	SecretCode string
}

// AuthResult is returned by every operation that opens a session.
type AuthResult struct {
	Token string             `json:"token"`
	User  domain.UserSummary `json:"user"`
}

// Register creates a customer or seller account. Sellers start pending.
// Admin accounts cannot be self-registered.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	name := strings.TrimSpace(in.Name)
	email := domain.NormalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, domain.ErrMissingFields.WithMessage("name, email and password are required")
	}

	role := in.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	if role != domain.RoleCustomer && role != domain.RoleSeller {
		return nil, domain.ErrInvalidRole
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, domain.Storage(err)
	}

	u := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		City:         strings.TrimSpace(in.City),
		Role:         role,
		VendorStatus: domain.VendorPending,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, domain.Storage(err)
	}

	if u.IsSeller() {
		invalidate(ctx, s.cache, cache.KeyBrands)
	}

	log.WithFields(log.Fields{"user_id": u.ID, "role": u.Role}).Info("user registered")
	publish(ctx, s.publisher, domain.EventUserRegistered, domain.UserRegisteredEvent{
		UserID:    u.ID,
		Role:      u.Role,
		CreatedAt: time.Now(),
	})

	return s.session(u)
}

// Login authenticates by email or phone. Rejected sellers are refused even
// with the right password.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	email := domain.NormalizeEmail(in.Email)
	phone := strings.TrimSpace(in.Phone)
	if (email == "" && phone == "") || in.Password == "" {
		return nil, domain.ErrMissingFields.WithMessage("email or phone and password are required")
	}

	var (
		u   *domain.User
		err error
	)
	if email != "" {
		u, err = s.users.FindByEmail(ctx, email)
	} else {
		u, err = s.users.FindByPhone(ctx, phone)
	}
	if err != nil {
		return nil, domain.Storage(err)
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}

	ok, err := s.hasher.Verify(u.PasswordHash, in.Password)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if !ok {
		return nil, domain.ErrBadCredential
	}

	if vs, seller := u.Vendor(); seller && vs == domain.VendorRejected {
		return nil, domain.ErrVendorRejected
	}

	return s.session(u)
}

// AdminLogin is Login restricted to the administrator.
func (s *AuthService) AdminLogin(ctx context.Context, in LoginInput) (*AuthResult, error) {
	res, err := s.Login(ctx, in)
	if err != nil {
		return nil, err
	}
	if res.User.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden.WithMessage("you do not have access to the admin dashboard")
	}
	return res, nil
}

// AdminExists reports whether the admin slot is taken.
func (s *AuthService) AdminExists(ctx context.Context) (bool, error) {
	admin, err := s.users.FindAdmin(ctx)
	if err != nil {
		return false, domain.Storage(err)
	}
	return admin != nil, nil
}

// RegisterAdmin creates the single administrator account.
func (s *AuthService) RegisterAdmin(ctx context.Context, in RegisterAdminInput) (*AuthResult, error) {
	name := strings.TrimSpace(in.Name)
	email := domain.NormalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" || in.SecretCode == "" {
		return nil, domain.ErrMissingFields.WithMessage("name, email, password and admin secret code are required")
	}
	if !s.secretMatches(in.SecretCode) {
		return nil, domain.ErrBadSecret
	}

	admin, err := s.users.FindAdmin(ctx)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if admin != nil {
		return nil, domain.ErrAdminExists
	}
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, domain.Storage(err)
	}
	slot := uint8(1)
	u := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		AdminSlot:    &slot,
	}
	// The unique admin slot rejects a concurrent second admin here even if
	// both callers passed the FindAdmin check.
	if err := s.users.Create(ctx, u); err != nil {
		return nil, domain.Storage(err)
	}

	log.WithField("user_id", u.ID).Info("administrator registered")
	return s.session(u)
}

// PromoteToAdmin turns an existing account into the administrator. It is
// idempotent for the current admin and refuses when someone else holds the
// slot.
func (s *AuthService) PromoteToAdmin(ctx context.Context, email, secret string) (*domain.UserSummary, error) {
	if !s.secretMatches(secret) {
		return nil, domain.ErrBadSecret
	}
	email = domain.NormalizeEmail(email)
	if email == "" {
		return nil, domain.ErrMissingFields.WithMessage("email is required")
	}

	admin, err := s.users.FindAdmin(ctx)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if admin != nil && admin.Email != email {
		return nil, domain.ErrAdminExists
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}

	if u.Role != domain.RoleAdmin {
		if err := s.users.PromoteToAdmin(ctx, u.ID); err != nil {
			return nil, domain.Storage(err)
		}
		if u.IsSeller() {
			invalidate(ctx, s.cache, cache.KeyBrands)
		}
		u.Role = domain.RoleAdmin
		log.WithField("user_id", u.ID).Info("user promoted to administrator")
	}

	sum := u.Summary()
	return &sum, nil
}

func (s *AuthService) secretMatches(code string) bool {
	if s.adminSecret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(code), []byte(s.adminSecret)) == 1
}

func (s *AuthService) session(u *domain.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, domain.Storage(err)
	}
	return &AuthResult{Token: token, User: u.Summary()}, nil
}
