package household

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleOwner  Role = "owner"
	RoleMember Role = "member"
)

type Member struct {
	ID         uuid.UUID
	Name       string
	Role       Role
	AvatarSeed string
}

type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusExpired  InviteStatus = "expired"
)

type Invite struct {
	ID        uuid.UUID
	Contact   string // phone or email
	Status    InviteStatus
	CreatedAt time.Time
}

// FeedEntry is one line of the household activity feed.
type FeedEntry struct {
	ID   uuid.UUID
	At   time.Time
	Text string
}

var (
	ErrInvalidContact = errors.New("enter a valid phone or email")
	ErrInviteNotFound = errors.New("invite not found")
	ErrMemberNotFound = errors.New("member not found")
	ErrOwnerImmutable = errors.New("the owner can't be removed")
)
