package household

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// feedCap bounds the activity feed, newest first.
const feedCap = 20

// maxMemberName truncates display names derived from invites.
const maxMemberName = 18

// Service owns household membership, invites and the activity feed.
// The scheduler reads member IDs from it for gate evaluation and never
// mutates membership; all writes come from the presentation-facing
// operations below, serialized by the engine.
type Service struct {
	name    string
	ownerID uuid.UUID
	members []*Member
	invites []*Invite
	feed    []*FeedEntry
}

// NewService seeds the household with its owner ("You").
func NewService(name string) *Service {
	s := &Service{}
	s.reset(name)

	return s
}

func (s *Service) reset(name string) {
	owner := &Member{ID: uuid.New(), Name: "You", Role: RoleOwner, AvatarSeed: "you"}

	s.name = name
	s.ownerID = owner.ID
	s.members = []*Member{owner}
	s.invites = nil
	s.feed = nil
}

// Reset rebuilds the household around a fresh owner.
func (s *Service) Reset(name string) {
	s.reset(name)
}

func (s *Service) Name() string {
	return s.name
}

func (s *Service) OwnerID() uuid.UUID {
	return s.ownerID
}

func (s *Service) Members() []*Member {
	out := make([]*Member, len(s.members))
	for i, m := range s.members {
		cp := *m
		out[i] = &cp
	}

	return out
}

func (s *Service) MemberIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(s.members))
	for i, m := range s.members {
		ids[i] = m.ID
	}

	return ids
}

func (s *Service) Member(id uuid.UUID) (*Member, bool) {
	for _, m := range s.members {
		if m.ID == id {
			cp := *m
			return &cp, true
		}
	}

	return nil, false
}

// MemberName resolves a display name, falling back to "family" the way
// the feed does for unknown payers.
func (s *Service) MemberName(id uuid.UUID) string {
	if m, ok := s.Member(id); ok {
		return m.Name
	}

	return "family"
}

// AddMember joins a named member directly; scenario seeding uses this
// to build the roster without the invite flow.
func (s *Service) AddMember(name string) *Member {
	m := &Member{
		ID:         uuid.New(),
		Name:       name,
		Role:       RoleMember,
		AvatarSeed: strings.ToLower(name),
	}
	s.members = append(s.members, m)

	cp := *m

	return &cp
}

// Invite records a pending invite for a phone number or email address.
func (s *Service) Invite(contact string, at time.Time) (*Invite, error) {
	contact = strings.TrimSpace(contact)
	if len(contact) < 6 {
		return nil, ErrInvalidContact
	}

	inv := &Invite{ID: uuid.New(), Contact: contact, Status: InviteStatusPending, CreatedAt: at}
	s.invites = append([]*Invite{inv}, s.invites...)

	cp := *inv

	return &cp, nil
}

// AcceptInvite turns a pending invite into a member. When no name is
// given the local part of the contact is used, capped at 18 runes.
func (s *Service) AcceptInvite(id uuid.UUID, name string) (*Member, error) {
	var inv *Invite

	for _, i := range s.invites {
		if i.ID == id {
			inv = i
			break
		}
	}

	if inv == nil {
		return nil, ErrInviteNotFound
	}

	memberName := strings.TrimSpace(name)
	if memberName == "" {
		memberName = strings.SplitN(inv.Contact, "@", 2)[0]
	}

	if memberName == "" {
		memberName = "New member"
	}

	if runes := []rune(memberName); len(runes) > maxMemberName {
		memberName = string(runes[:maxMemberName])
	}

	inv.Status = InviteStatusAccepted

	return s.AddMember(memberName), nil
}

// RemoveMember drops a member from the roster. The owner stays.
func (s *Service) RemoveMember(id uuid.UUID) error {
	if id == s.ownerID {
		return ErrOwnerImmutable
	}

	for i, m := range s.members {
		if m.ID == id {
			s.members = append(s.members[:i], s.members[i+1:]...)
			return nil
		}
	}

	return ErrMemberNotFound
}

func (s *Service) Invites() []*Invite {
	out := make([]*Invite, len(s.invites))
	for i, inv := range s.invites {
		cp := *inv
		out[i] = &cp
	}

	return out
}

// PushFeed prepends a feed entry, keeping the newest twenty.
func (s *Service) PushFeed(at time.Time, text string) {
	s.feed = append([]*FeedEntry{{ID: uuid.New(), At: at, Text: text}}, s.feed...)
	if len(s.feed) > feedCap {
		s.feed = s.feed[:feedCap]
	}
}

func (s *Service) Feed() []*FeedEntry {
	out := make([]*FeedEntry, len(s.feed))
	for i, e := range s.feed {
		cp := *e
		out[i] = &cp
	}

	return out
}
