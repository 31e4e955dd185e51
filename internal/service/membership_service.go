package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
	"github.com/mahlalem-eng/themosthigh-backend/internal/repository"
)

// membershipValidity is how long an issued card stays valid.
const membershipValidity = 180 * 24 * time.Hour

// MembershipService runs the application lifecycle: submitted applications
// start pending and are approved or rejected by staff. Approval issues the
// member number and card.
type MembershipService struct {
	members  repository.MembershipRepository
	events   *EventPublisher
	validate *validator.Validate
}

func NewMembershipService(members repository.MembershipRepository, events *EventPublisher) *MembershipService {
	return &MembershipService{
		members:  members,
		events:   events,
		validate: validator.New(),
	}
}

func (s *MembershipService) Submit(ctx context.Context, app *entity.MembershipApplication) (*entity.MembershipApplication, error) {
	if err := s.validate.Struct(app); err != nil {
		return nil, err
	}

	now := time.Now()
	app.ID = uuid.NewString()
	app.Status = entity.ApplicationStatusPending
	app.CreatedAt = now
	app.UpdatedAt = now
	app.ReviewedAt = nil
	app.MemberNumber = ""
	app.CardGenerated = false

	if err := s.members.Create(ctx, app); err != nil {
		logger.Error().Err(err).Msg("Error creating membership application")
		return nil, err
	}
	return app, nil
}

func (s *MembershipService) ListApplications(ctx context.Context) ([]*entity.MembershipApplication, error) {
	return s.members.GetAll(ctx)
}

func (s *MembershipService) GetApplication(ctx context.Context, id string) (*entity.MembershipApplication, error) {
	return s.members.GetByID(ctx, id)
}

// SetStatus moves an application to the given state. On approval it
// allocates the year-scoped member number from the durable sequence, issues
// the card and stamps the expiry. Approving an already-approved application
// is refused so a member number is never reissued.
func (s *MembershipService) SetStatus(ctx context.Context, id string, status entity.ApplicationStatus, reviewedBy, notes string) (*entity.MembershipApplication, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	app, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if status == entity.ApplicationStatusApproved {
		if app.Status == entity.ApplicationStatusApproved {
			return nil, ErrAlreadyApproved
		}

		memberNumber, err := s.allocateMemberNumber(ctx, now)
		if err != nil {
			logger.Error().Err(err).Msgf("Error allocating member number for application %s", id)
			return nil, err
		}

		expiry := now.Add(membershipValidity)
		card, err := json.Marshal(entity.CardPayload{
			MemberID: memberNumber,
			Issued:   now.Format(time.RFC3339),
			Tier:     entity.MembershipTierGold,
		})
		if err != nil {
			return nil, err
		}

		app.MemberNumber = memberNumber
		app.MembershipTier = entity.MembershipTierGold
		app.MemberSince = &now
		app.ExpiryDate = &expiry
		app.QRCodeData = string(card)
		app.CardGenerated = true
	}

	app.Status = status
	app.ReviewedAt = &now
	app.UpdatedAt = now
	if reviewedBy != "" {
		app.ReviewedBy = reviewedBy
	}
	if notes != "" {
		app.Notes = notes
	}

	if err := s.members.Update(ctx, app); err != nil {
		logger.Error().Err(err).Msgf("Error updating membership application %s", id)
		return nil, err
	}

	if status == entity.ApplicationStatusApproved {
		if err := s.events.Publish(ctx, "membership-approved", app.ID, app); err != nil {
			logger.Error().Err(err).Msgf("Error publishing approval event for %s", app.ID)
		}
	}

	return app, nil
}

func (s *MembershipService) DeleteApplication(ctx context.Context, id string) error {
	return s.members.Delete(ctx, id)
}

// Lookup finds an approved member by exact member number or email
// (case-insensitive). Pending and rejected applications are invisible here.
func (s *MembershipService) Lookup(ctx context.Context, query string) (*entity.MembershipApplication, error) {
	return s.members.FindApproved(ctx, query, strings.ToLower(query))
}

// Verify is the staff-facing check: exact member number only.
func (s *MembershipService) Verify(ctx context.Context, memberNumber string) (*entity.MembershipApplication, error) {
	return s.members.FindApproved(ctx, memberNumber, "")
}

func (s *MembershipService) allocateMemberNumber(ctx context.Context, now time.Time) (string, error) {
	year := now.Year()
	sequence, err := s.members.NextMemberSequence(ctx, year)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("MS-%d-%03d", year, sequence), nil
}
