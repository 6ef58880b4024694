package members

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListMembers returns every member ordered by name.
func (s *Service) ListMembers(ctx context.Context) ([]Member, error) {
	return s.repo.ListMembers(ctx)
}

func (s *Service) GetMember(ctx context.Context, id string) (*Member, error) {
	return s.repo.GetMember(ctx, id)
}

func (s *Service) CreateMember(ctx context.Context, input CreateMemberInput) (*Member, error) {
	name, err := required("name", input.Name)
	if err != nil {
		return nil, err
	}
	instrument, err := required("instrument", input.Instrument)
	if err != nil {
		return nil, err
	}
	email, err := required("email", input.Email)
	if err != nil {
		return nil, err
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	member := Member{
		ID:         uuid.NewString(),
		Name:       name,
		Instrument: instrument,
		Email:      email,
		Phone:      strings.TrimSpace(input.Phone),
		IsActive:   active,
	}
	if err := s.repo.CreateMember(ctx, &member); err != nil {
		return nil, err
	}

	return &member, nil
}

func (s *Service) UpdateMember(ctx context.Context, input UpdateMemberInput) (*Member, error) {
	member, err := s.repo.GetMember(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if input.Empty() {
		return member, nil
	}

	if input.Name != nil {
		if member.Name, err = required("name", *input.Name); err != nil {
			return nil, err
		}
	}
	if input.Instrument != nil {
		if member.Instrument, err = required("instrument", *input.Instrument); err != nil {
			return nil, err
		}
	}
	if input.Email != nil {
		if member.Email, err = required("email", *input.Email); err != nil {
			return nil, err
		}
	}
	if input.Phone != nil {
		member.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.IsActive != nil {
		member.IsActive = *input.IsActive
	}

	if err := s.repo.UpdateMember(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

// DeleteMember removes the member only. Practices keep their responses for
// the removed id and render them as unknown.
func (s *Service) DeleteMember(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteMember(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMemberNotFound
	}
	return nil
}

func required(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	return value, nil
}
