package services

import (
	"context"

	"github.com/google/uuid"

	"vibego/internal/models/request_models"
	"vibego/internal/models/response_models"
	mem "vibego/pkg/memcache"
	"vibego/pkg/utils"
)

// RegenServiceInterface coordinates regeneration of a displayed itinerary:
// practical edits mark the session dirty, an explicit regenerate action runs
// the full pipeline, and a failed regeneration leaves the displayed itinerary
// untouched. A patch is never merged into an itinerary without a round trip
// through generation, since only the pipeline enforces the day-count and
// address invariants.
type RegenServiceInterface interface {
	OpenSession(itinerary *response_models.Itinerary, profile *request_models.SoulProfile, completedItems []string) (string, error)
	ProposeEdit(sessionID string, patch request_models.PracticalPatch) (bool, error)
	Regenerate(ctx context.Context, sessionID string) (*response_models.Itinerary, error)
	Session(sessionID string) (*mem.ItinerarySession, error)
	CloseSession(sessionID string)
}

type RegenService struct {
	sessions         mem.SessionStore
	profileService   ProfileServiceInterface
	itineraryService ItineraryServiceInterface
}

func NewRegenService(
	sessions mem.SessionStore,
	profileService ProfileServiceInterface,
	itineraryService ItineraryServiceInterface,
) RegenServiceInterface {
	return &RegenService{
		sessions:         sessions,
		profileService:   profileService,
		itineraryService: itineraryService,
	}
}

func (r *RegenService) OpenSession(
	itinerary *response_models.Itinerary,
	profile *request_models.SoulProfile,
	completedItems []string,
) (string, error) {
	canonical, err := r.profileService.NormalizeSoulProfile(profile)
	if err != nil {
		return "", err
	}

	session := &mem.ItinerarySession{
		ID:             uuid.New().String(),
		State:          mem.StateClean,
		Profile:        canonical,
		Itinerary:      itinerary,
		CompletedItems: append([]string(nil), completedItems...),
	}
	r.sessions.Put(session)
	return session.ID, nil
}

// ProposeEdit overlays the patch on the session's profile and marks the
// session dirty only when a practical field actually differs from the
// last-generated values. The stored profile is never mutated in place.
func (r *RegenService) ProposeEdit(sessionID string, patch request_models.PracticalPatch) (bool, error) {
	var dirty bool

	found, err := r.sessions.Update(sessionID, func(session *mem.ItinerarySession) error {
		if session.State == mem.StateRegenerating {
			return utils.ErrRegenerationInFlight
		}

		base := session.Profile
		if session.PendingProfile != nil {
			base = session.PendingProfile
		}

		candidate, err := r.profileService.NormalizeSoulProfile(overlayPractical(base, patch))
		if err != nil {
			return err
		}

		dirty = !practicalEquals(candidate.Practical, session.Profile.Practical)
		if dirty {
			session.PendingProfile = candidate
			session.State = mem.StateDirty
		} else {
			session.PendingProfile = nil
			session.State = mem.StateClean
		}
		return nil
	})
	if !found {
		return false, utils.ErrSessionNotFound
	}
	return dirty, err
}

// Regenerate re-enters the generation pipeline with the pending profile. On
// success the displayed itinerary is replaced and the session is clean against
// the new profile; on failure the previous itinerary stays fully intact. The
// completion overlay is left untouched either way: item ids are positional and
// stale marks after a regeneration are accepted. If the session was closed
// while the call was in flight, the result is discarded.
func (r *RegenService) Regenerate(ctx context.Context, sessionID string) (*response_models.Itinerary, error) {
	var pending *request_models.SoulProfile

	found, err := r.sessions.Update(sessionID, func(session *mem.ItinerarySession) error {
		switch session.State {
		case mem.StateRegenerating:
			return utils.ErrRegenerationInFlight
		case mem.StateClean:
			return utils.ErrNoPendingChanges
		}
		if session.PendingProfile == nil {
			return utils.ErrNoPendingChanges
		}
		pending = session.PendingProfile.Clone()
		session.State = mem.StateRegenerating
		return nil
	})
	if !found {
		return nil, utils.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	itinerary, genErr := r.itineraryService.GenerateItinerary(ctx, pending)

	found, err = r.sessions.Update(sessionID, func(session *mem.ItinerarySession) error {
		if genErr != nil {
			session.State = mem.StateDirty
			return genErr
		}
		session.Itinerary = itinerary
		session.Profile = pending
		session.PendingProfile = nil
		session.State = mem.StateClean
		return nil
	})
	if !found {
		return nil, utils.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return itinerary, nil
}

func (r *RegenService) Session(sessionID string) (*mem.ItinerarySession, error) {
	session, ok := r.sessions.Get(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return session, nil
}

func (r *RegenService) CloseSession(sessionID string) {
	r.sessions.Delete(sessionID)
}

func overlayPractical(base *request_models.SoulProfile, patch request_models.PracticalPatch) *request_models.SoulProfile {
	out := base.Clone()
	if patch.Destination != nil {
		out.Practical.Destination = *patch.Destination
	}
	if patch.StartDate != nil {
		out.Practical.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		out.Practical.EndDate = *patch.EndDate
	}
	if patch.Budget != nil {
		out.Practical.Budget = *patch.Budget
	}
	if patch.Companions != nil {
		out.Practical.Companions = *patch.Companions
	}
	return out
}

func practicalEquals(a, b request_models.PracticalDetails) bool {
	return a.Destination == b.Destination &&
		a.StartDate == b.StartDate &&
		a.EndDate == b.EndDate &&
		a.Companions == b.Companions &&
		a.Budget.IsString == b.Budget.IsString &&
		a.Budget.Text == b.Budget.Text &&
		a.Budget.Number == b.Budget.Number
}
