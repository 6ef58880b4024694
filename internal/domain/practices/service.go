package practices

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithClock replaces the time source used for response timestamps.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) ListPractices(ctx context.Context) ([]PracticeWithResponses, error) {
	practices, err := s.repo.ListPractices(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, practices)
}

func (s *Service) GetPractice(ctx context.Context, id string) (*PracticeWithResponses, error) {
	practice, err := s.repo.GetPractice(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolveOne(ctx, *practice)
}

func (s *Service) CreatePractice(ctx context.Context, input CreatePracticeInput) (*PracticeWithResponses, error) {
	title, err := required("title", input.Title)
	if err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	clock, err := required("time", input.Time)
	if err != nil {
		return nil, err
	}
	location, err := required("location", input.Location)
	if err != nil {
		return nil, err
	}

	responses, err := s.buildResponses(input.MemberResponses, nil)
	if err != nil {
		return nil, err
	}

	practice := Practice{
		ID:              uuid.NewString(),
		Title:           title,
		Date:            civilDate(input.Date),
		Time:            clock,
		Location:        location,
		Description:     strings.TrimSpace(input.Description),
		MemberResponses: responses,
	}
	if err := s.repo.CreatePractice(ctx, &practice); err != nil {
		return nil, err
	}

	return s.resolveOne(ctx, practice)
}

func (s *Service) UpdatePractice(ctx context.Context, input UpdatePracticeInput) (*PracticeWithResponses, error) {
	practice, err := s.repo.GetPractice(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if input.Empty() {
		return s.resolveOne(ctx, *practice)
	}

	if input.Title != nil {
		if practice.Title, err = required("title", *input.Title); err != nil {
			return nil, err
		}
	}
	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
		}
		practice.Date = civilDate(*input.Date)
	}
	if input.Time != nil {
		if practice.Time, err = required("time", *input.Time); err != nil {
			return nil, err
		}
	}
	if input.Location != nil {
		if practice.Location, err = required("location", *input.Location); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		practice.Description = strings.TrimSpace(*input.Description)
	}
	if input.MemberResponses != nil {
		responses, err := s.buildResponses(*input.MemberResponses, practice.MemberResponses)
		if err != nil {
			return nil, err
		}
		practice.MemberResponses = responses
	}

	if err := s.repo.UpdatePractice(ctx, practice); err != nil {
		return nil, err
	}

	return s.resolveOne(ctx, *practice)
}

func (s *Service) DeletePractice(ctx context.Context, id string) error {
	deleted, err := s.repo.DeletePractice(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPracticeNotFound
	}
	return nil
}

// UpdateMemberResponse sets the status (and note, when given) of a single
// response entry and persists the whole response list. The response
// timestamp only moves when something actually changed, so repeating the
// same update leaves the stored practice untouched.
func (s *Service) UpdateMemberResponse(ctx context.Context, input UpdateMemberResponseInput) (*PracticeWithResponses, error) {
	if strings.TrimSpace(input.Status) == "" {
		return nil, fmt.Errorf("%w: status is required", ErrInvalidInput)
	}
	status, err := ParseResponseStatus(input.Status)
	if err != nil {
		return nil, err
	}

	practice, err := s.repo.GetPractice(ctx, input.PracticeID)
	if err != nil {
		return nil, err
	}

	idx := practice.MemberResponses.IndexOf(input.MemberID)
	if idx < 0 {
		return nil, ErrResponseNotFound
	}

	responses := practice.MemberResponses.Clone()
	response := responses[idx]
	changed := response.Status != status
	response.Status = status
	if input.Note != nil {
		note := strings.TrimSpace(*input.Note)
		changed = changed || response.Note != note
		response.Note = note
	}
	if !changed {
		return s.resolveOne(ctx, *practice)
	}

	response.RespondedAt = s.now().UTC()
	responses[idx] = response
	if err := s.repo.SaveMemberResponses(ctx, practice.ID, responses); err != nil {
		return nil, err
	}

	practice.MemberResponses = responses
	return s.resolveOne(ctx, *practice)
}

// buildResponses turns request entries into stored responses. Entries that
// match an existing response with the same status keep their timestamp and
// note.
func (s *Service) buildResponses(inputs []MemberResponseInput, existing MemberResponses) (MemberResponses, error) {
	now := s.now().UTC()
	responses := make(MemberResponses, 0, len(inputs))
	for _, input := range inputs {
		memberID := strings.TrimSpace(input.MemberID)
		if memberID == "" {
			return nil, fmt.Errorf("%w: member is required for each response", ErrInvalidInput)
		}
		status, err := ParseResponseStatus(input.Status)
		if err != nil {
			return nil, err
		}

		response := MemberResponse{MemberID: memberID, Status: status, RespondedAt: now}
		if idx := existing.IndexOf(memberID); idx >= 0 && existing[idx].Status == status {
			response = existing[idx]
		}
		responses = append(responses, response)
	}
	return responses, nil
}

func (s *Service) resolveOne(ctx context.Context, practice Practice) (*PracticeWithResponses, error) {
	resolved, err := s.resolve(ctx, []Practice{practice})
	if err != nil {
		return nil, err
	}
	return &resolved[0], nil
}

// resolve joins responses against a fresh member snapshot on every call.
func (s *Service) resolve(ctx context.Context, practices []Practice) ([]PracticeWithResponses, error) {
	result := make([]PracticeWithResponses, 0, len(practices))
	if len(practices) == 0 {
		return result, nil
	}

	members := map[string]MemberSummary{}
	if ids := referencedMemberIDs(practices); len(ids) > 0 {
		summaries, err := s.repo.ListMemberSummaries(ctx, ids)
		if err != nil {
			return nil, err
		}
		members = IndexMembers(summaries)
	}

	for _, practice := range practices {
		result = append(result, PracticeWithResponses{
			Practice:  practice,
			Responses: ResolveResponses(practice.MemberResponses, members),
		})
	}
	return result, nil
}

func required(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	return value, nil
}

func civilDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
