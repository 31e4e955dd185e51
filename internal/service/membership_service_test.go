package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
	"github.com/mahlalem-eng/themosthigh-backend/internal/repository"
)

func submitApplication(t *testing.T, members *MembershipService, email string) *entity.MembershipApplication {
	t.Helper()
	app, err := members.Submit(context.Background(), &entity.MembershipApplication{
		FirstName:   "Thandi",
		LastName:    "Mokoena",
		Email:       email,
		Phone:       "0821234567",
		DateOfBirth: "1990-04-12",
		IDNumber:    "9004125800081",
	})
	require.NoError(t, err)
	return app
}

func TestSubmitRequiresIdentityFields(t *testing.T) {
	members := NewMembershipService(repository.NewMemoryMembershipRepository(), nil)

	_, err := members.Submit(context.Background(), &entity.MembershipApplication{
		FirstName: "Thandi",
	})
	assert.Error(t, err)
}

func TestSubmitStartsPending(t *testing.T) {
	members := NewMembershipService(repository.NewMemoryMembershipRepository(), nil)
	app := submitApplication(t, members, "thandi@example.com")

	assert.Equal(t, entity.ApplicationStatusPending, app.Status)
	assert.Empty(t, app.MemberNumber)
	assert.False(t, app.CardGenerated)
}

func TestApprovalIssuesSequentialMemberNumbers(t *testing.T) {
	ctx := context.Background()
	members := NewMembershipService(repository.NewMemoryMembershipRepository(), nil)
	year := time.Now().Year()

	for i := 1; i <= 2; i++ {
		app := submitApplication(t, members, fmt.Sprintf("member%d@example.com", i))
		approved, err := members.SetStatus(ctx, app.ID, entity.ApplicationStatusApproved, "staff", "")
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("MS-%d-%03d", year, i), approved.MemberNumber)
	}

	third := submitApplication(t, members, "member3@example.com")
	approved, err := members.SetStatus(ctx, third.ID, entity.ApplicationStatusApproved, "staff", "")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("MS-%d-003", year), approved.MemberNumber)
}

func TestApprovalIssuesCard(t *testing.T) {
	ctx := context.Background()
	members := NewMembershipService(repository.NewMemoryMembershipRepository(), nil)
	app := submitApplication(t, members, "thandi@example.com")

	approved, err := members.SetStatus(ctx, app.ID, entity.ApplicationStatusApproved, "staff", "looks good")
	require.NoError(t, err)

	assert.Equal(t, entity.MembershipTierGold, approved.MembershipTier)
	assert.True(t, approved.CardGenerated)
	require.NotNil(t, approved.MemberSince)
	require.NotNil(t, approved.ExpiryDate)
	assert.WithinDuration(t, approved.MemberSince.Add(180*24*time.Hour), *approved.ExpiryDate, time.Second)
	require.NotNil(t, approved.ReviewedAt)
	assert.Equal(t, "staff", approved.ReviewedBy)

	card := entity.CardPayload{}
	require.NoError(t, json.Unmarshal([]byte(approved.QRCodeData), &card))
	assert.Equal(t, approved.MemberNumber, card.MemberID)
	assert.Equal(t, entity.MembershipTierGold, card.Tier)
}

func TestInvalidStatusLeavesApplicationUnchanged(t *testing.T) {
	ctx := context.Background()
	members := NewMembershipService(repository.NewMemoryMembershipRepository(), nil)
	app := submitApplication(t, members, "thandi@example.com")

	_, err := members.SetStatus(ctx, app.ID, entity.ApplicationStatus("bogus"), "", "")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	stored, err := members.GetApplication(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationStatusPending, stored.Status)
}

func TestReApprovalIsRefused(t *testing.T) {
	ctx := context.Background()
	members := NewMembershipService(repository.NewMemoryMembershipRepository(), nil)
	app := submitApplication(t, members, "thandi@example.com")

	approved, err := members.SetStatus(ctx, app.ID, entity.ApplicationStatusApproved, "", "")
	require.NoError(t, err)

	_, err = members.SetStatus(ctx, app.ID, entity.ApplicationStatusApproved, "", "")
	assert.ErrorIs(t, err, ErrAlreadyApproved)

	stored, err := members.GetApplication(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, approved.MemberNumber, stored.MemberNumber, "member number is never reissued")
}

func TestRejectionIssuesNoCard(t *testing.T) {
	ctx := context.Background()
	members := NewMembershipService(repository.NewMemoryMembershipRepository(), nil)
	app := submitApplication(t, members, "thandi@example.com")

	rejected, err := members.SetStatus(ctx, app.ID, entity.ApplicationStatusRejected, "staff", "incomplete")
	require.NoError(t, err)
	assert.Empty(t, rejected.MemberNumber)
	assert.False(t, rejected.CardGenerated)
	require.NotNil(t, rejected.ReviewedAt)
}

func TestLookupIsCaseInsensitiveOnEmail(t *testing.T) {
	ctx := context.Background()
	members := NewMembershipService(repository.NewMemoryMembershipRepository(), nil)
	app := submitApplication(t, members, "A@B.com")

	_, err := members.SetStatus(ctx, app.ID, entity.ApplicationStatusApproved, "", "")
	require.NoError(t, err)

	found, err := members.Lookup(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, app.ID, found.ID)
}

func TestLookupExcludesPendingApplications(t *testing.T) {
	ctx := context.Background()
	members := NewMembershipService(repository.NewMemoryMembershipRepository(), nil)
	submitApplication(t, members, "pending@example.com")

	_, err := members.Lookup(ctx, "pending@example.com")
	assert.ErrorIs(t, err, repository.ErrApplicationNotFound)
}

func TestVerifyMatchesMemberNumberOnly(t *testing.T) {
	ctx := context.Background()
	members := NewMembershipService(repository.NewMemoryMembershipRepository(), nil)
	app := submitApplication(t, members, "thandi@example.com")

	approved, err := members.SetStatus(ctx, app.ID, entity.ApplicationStatusApproved, "", "")
	require.NoError(t, err)

	found, err := members.Verify(ctx, approved.MemberNumber)
	require.NoError(t, err)
	assert.Equal(t, app.ID, found.ID)

	_, err = members.Verify(ctx, "thandi@example.com")
	assert.ErrorIs(t, err, repository.ErrApplicationNotFound)
}

func TestDeleteApplication(t *testing.T) {
	ctx := context.Background()
	members := NewMembershipService(repository.NewMemoryMembershipRepository(), nil)
	app := submitApplication(t, members, "thandi@example.com")

	require.NoError(t, members.DeleteApplication(ctx, app.ID))
	_, err := members.GetApplication(ctx, app.ID)
	assert.ErrorIs(t, err, repository.ErrApplicationNotFound)
}
