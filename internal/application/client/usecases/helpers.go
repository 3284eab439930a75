package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"gymdesk/internal/application/client/dto"
	"gymdesk/internal/domain/client"
	vo "gymdesk/internal/domain/client/valueobjects"
	"gymdesk/internal/domain/membership"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/constants"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/services/markdown"
)

// toAppError maps domain failures onto application errors. Errors that are
// already AppErrors pass through.
func toAppError(err error) error {
	if err == nil || errors.IsAppError(err) {
		return err
	}

	var verr *client.ValidationError
	switch {
	case stderrors.As(err, &verr):
		return errors.NewValidationError(fmt.Sprintf("invalid %s", verr.Field), verr.Err.Error())
	case stderrors.Is(err, client.ErrValidation):
		return errors.NewValidationError(err.Error())
	case stderrors.Is(err, client.ErrClientNotFound):
		return errors.NewNotFoundError(constants.ErrMsgClientNotFound)
	case errors.IsDuplicateError(err):
		return errors.NewConflictError("client already exists", err.Error())
	}
	return errors.NewInternalError("operation failed", err.Error())
}

// loadClient resolves a client by SID or fails with a not-found AppError.
func loadClient(ctx context.Context, repo client.Repository, log logger.Interface, sid string) (*client.Client, error) {
	c, err := repo.GetBySID(ctx, sid)
	if err != nil {
		log.Errorw("failed to get client", "sid", sid, "error", err)
		return nil, errors.NewInternalError("failed to get client")
	}
	if c == nil {
		return nil, errors.NewNotFoundError(constants.ErrMsgClientNotFound, sid)
	}
	return c, nil
}

// parseClientRequest turns a validated request into domain values. The end
// date is derived from start date and plan.
func parseClientRequest(req dto.ClientRequest) (client.Profile, client.Membership, error) {
	gender, err := vo.ParseGender(req.Gender)
	if err != nil {
		return client.Profile{}, client.Membership{}, errors.NewValidationError("invalid gender", err.Error())
	}
	plan, err := vo.ParsePlanType(req.PlanType)
	if err != nil {
		return client.Profile{}, client.Membership{}, errors.NewValidationError("invalid plan_type", err.Error())
	}
	start, err := biztime.ParseDate(req.StartDate)
	if err != nil {
		return client.Profile{}, client.Membership{}, errors.NewValidationError("invalid start_date", err.Error())
	}

	profile := client.Profile{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Age:      req.Age,
		Gender:   gender,
		Address:  req.Address,
		Notes:    req.Notes,
	}
	m := client.Membership{
		PlanType:   plan,
		PlanAmount: req.PlanAmount,
		StartDate:  start,
		EndDate:    membership.TermEnd(start, plan),
	}
	return profile, m, nil
}

// clientView renders one client as of now. A notes rendering failure only
// loses the HTML, never the response.
func clientView(c *client.Client, now time.Time, renderer markdown.NotesRenderer, log logger.Interface) dto.ClientDTO {
	snapshot := membership.Snapshot{
		Client:        c,
		Status:        membership.ResolveStatus(c, now),
		DaysRemaining: membership.DaysRemaining(c.EndDate(), now),
	}
	return dto.ToClientDTO(snapshot, renderNotes(c, renderer, log))
}

func snapshotView(s membership.Snapshot, renderer markdown.NotesRenderer, log logger.Interface) dto.ClientDTO {
	return dto.ToClientDTO(s, renderNotes(s.Client, renderer, log))
}

func renderNotes(c *client.Client, renderer markdown.NotesRenderer, log logger.Interface) string {
	if renderer == nil || c.Notes() == "" {
		return ""
	}
	html, err := renderer.Render(c.Notes())
	if err != nil {
		log.Warnw("failed to render client notes", "sid", c.SID(), "error", err)
		return ""
	}
	return html
}

// invalidateStats drops cached dashboard stats after a mutation. Failures
// are logged; the cache expires on its own.
func invalidateStats(ctx context.Context, cache StatsCache, log logger.Interface) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		log.Warnw("failed to invalidate dashboard stats cache", "error", err)
	}
}
