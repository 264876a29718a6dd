package household_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Steve0012345/Snoonu-App/internal/household"
)

var at = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestService_NewSeedsOwner(t *testing.T) {
	svc := household.NewService("Nday Family")

	assert.Equal(t, "Nday Family", svc.Name())

	members := svc.Members()
	require.Len(t, members, 1)
	assert.Equal(t, "You", members[0].Name)
	assert.Equal(t, household.RoleOwner, members[0].Role)
	assert.Equal(t, svc.OwnerID(), members[0].ID)
}

func TestService_Invite(t *testing.T) {
	type testCase struct {
		name    string
		contact string
		wantErr error
	}

	tests := []testCase{
		{
			name:    "Email",
			contact: "ahmed@example.com",
		},
		{
			name:    "Phone",
			contact: "+97455512345",
		},
		{
			name:    "TooShort",
			contact: "abc",
			wantErr: household.ErrInvalidContact,
		},
		{
			name:    "WhitespaceOnly",
			contact: "        ",
			wantErr: household.ErrInvalidContact,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := household.NewService("Nday Family")

			inv, err := svc.Invite(tt.contact, at)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, inv)
				assert.Empty(t, svc.Invites())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, household.InviteStatusPending, inv.Status)
			assert.Equal(t, strings.TrimSpace(tt.contact), inv.Contact)
			assert.Len(t, svc.Invites(), 1)
		})
	}
}

func TestService_AcceptInvite(t *testing.T) {
	svc := household.NewService("Nday Family")

	inv, err := svc.Invite("ahmed@example.com", at)
	require.NoError(t, err)

	member, err := svc.AcceptInvite(inv.ID, "")
	require.NoError(t, err)

	// Name defaults to the contact's local part.
	assert.Equal(t, "ahmed", member.Name)
	assert.Equal(t, household.RoleMember, member.Role)

	invites := svc.Invites()
	require.Len(t, invites, 1)
	assert.Equal(t, household.InviteStatusAccepted, invites[0].Status)
	assert.Len(t, svc.Members(), 2)
}

func TestService_AcceptInviteLongNameTruncated(t *testing.T) {
	svc := household.NewService("Nday Family")

	inv, err := svc.Invite("someone@example.com", at)
	require.NoError(t, err)

	member, err := svc.AcceptInvite(inv.ID, "Abdulrahman Al-Thani the Third")
	require.NoError(t, err)
	assert.Equal(t, "Abdulrahman Al-Tha", member.Name)
	assert.Len(t, []rune(member.Name), 18)
}

func TestService_AcceptInviteNotFound(t *testing.T) {
	svc := household.NewService("Nday Family")

	_, err := svc.AcceptInvite(uuid.New(), "Ahmed")
	assert.ErrorIs(t, err, household.ErrInviteNotFound)
}

func TestService_RemoveMember(t *testing.T) {
	svc := household.NewService("Nday Family")
	member := svc.AddMember("Ahmed")

	require.NoError(t, svc.RemoveMember(member.ID))
	assert.Len(t, svc.Members(), 1)

	assert.ErrorIs(t, svc.RemoveMember(member.ID), household.ErrMemberNotFound)
	assert.ErrorIs(t, svc.RemoveMember(svc.OwnerID()), household.ErrOwnerImmutable)
}

func TestService_MemberName(t *testing.T) {
	svc := household.NewService("Nday Family")
	member := svc.AddMember("Ahmed")

	assert.Equal(t, "Ahmed", svc.MemberName(member.ID))
	assert.Equal(t, "You", svc.MemberName(svc.OwnerID()))
	assert.Equal(t, "family", svc.MemberName(uuid.New()))
}

func TestService_FeedCapped(t *testing.T) {
	svc := household.NewService("Nday Family")

	for i := 0; i < 25; i++ {
		svc.PushFeed(at.Add(time.Duration(i)*time.Minute), fmt.Sprintf("entry %d", i))
	}

	feed := svc.Feed()
	require.Len(t, feed, 20)

	// Newest first; the oldest five fell off.
	assert.Equal(t, "entry 24", feed[0].Text)
	assert.Equal(t, "entry 5", feed[19].Text)
}

func TestService_Reset(t *testing.T) {
	svc := household.NewService("Nday Family")
	svc.AddMember("Ahmed")
	svc.PushFeed(at, "something happened")

	oldOwner := svc.OwnerID()

	svc.Reset("Rina's Family")

	assert.Equal(t, "Rina's Family", svc.Name())
	assert.Len(t, svc.Members(), 1)
	assert.Empty(t, svc.Feed())
	assert.NotEqual(t, oldOwner, svc.OwnerID())
}
