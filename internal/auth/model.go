package auth

import "time"

type Role int

const (
	RoleCustomer Role = 1
	RoleVendor   Role = 2
	RoleAdmin    Role = 3
)

func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "Customer"
	case RoleVendor:
		return "Vendor"
	case RoleAdmin:
		return "Admin"
	default:
		return "Unknown"
	}
}

type Status int

const (
	StatusActive    Status = 1
	StatusInactive  Status = 2
	StatusSuspended Status = 3
	StatusBanned    Status = 4
)

type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	PhoneNumber     *string   `json:"phoneNumber,omitempty"`
	ProfileImageURL *string   `json:"profileImageUrl,omitempty"`
	Role            Role      `json:"role"`
	Status          Status    `json:"status"`
	EmailConfirmed  bool      `json:"emailConfirmed"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Role        Role    `json:"role"`
}

// LoginResponse is returned by both login and register.
type LoginResponse struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refreshToken"`
	Expiration   time.Time `json:"expiration"`
	User         User      `json:"user"`
}

type UpdateProfileRequest struct {
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	PhoneNumber     *string `json:"phoneNumber,omitempty"`
	ProfileImageURL *string `json:"profileImageUrl,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
