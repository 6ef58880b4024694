package members

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMembersRepo struct {
	members map[string]*Member
	failErr error
}

func newFakeMembersRepo() *fakeMembersRepo {
	return &fakeMembersRepo{members: make(map[string]*Member)}
}

func (r *fakeMembersRepo) ListMembers(ctx context.Context) ([]Member, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	result := make([]Member, 0, len(r.members))
	for _, member := range r.members {
		result = append(result, *member)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *fakeMembersRepo) GetMember(ctx context.Context, id string) (*Member, error) {
	member, ok := r.members[id]
	if !ok {
		return nil, ErrMemberNotFound
	}
	copied := *member
	return &copied, nil
}

func (r *fakeMembersRepo) CreateMember(ctx context.Context, member *Member) error {
	if r.failErr != nil {
		return r.failErr
	}
	copied := *member
	r.members[member.ID] = &copied
	return nil
}

func (r *fakeMembersRepo) UpdateMember(ctx context.Context, member *Member) error {
	if _, ok := r.members[member.ID]; !ok {
		return ErrMemberNotFound
	}
	copied := *member
	r.members[member.ID] = &copied
	return nil
}

func (r *fakeMembersRepo) DeleteMember(ctx context.Context, id string) (bool, error) {
	if _, ok := r.members[id]; !ok {
		return false, nil
	}
	delete(r.members, id)
	return true, nil
}

func TestCreateMemberSuccess(t *testing.T) {
	repo := newFakeMembersRepo()
	svc := NewService(repo)

	result, err := svc.CreateMember(context.Background(), CreateMemberInput{
		Name:       "  Nick ",
		Instrument: "Drums",
		Email:      "nick@band.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "Nick", result.Name)
	assert.True(t, result.IsActive)
	require.NotEmpty(t, result.ID)
	assert.Contains(t, repo.members, result.ID)
}

func TestCreateMemberInactive(t *testing.T) {
	svc := NewService(newFakeMembersRepo())
	inactive := false

	result, err := svc.CreateMember(context.Background(), CreateMemberInput{
		Name: "Logan", Instrument: "Guitar", Email: "logan@band.com", IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, result.IsActive)
}

func TestCreateMemberRequiresFields(t *testing.T) {
	cases := []struct {
		name  string
		input CreateMemberInput
	}{
		{name: "missing name", input: CreateMemberInput{Name: "   ", Instrument: "Bass", Email: "a@b.c"}},
		{name: "missing instrument", input: CreateMemberInput{Name: "Keelan", Email: "a@b.c"}},
		{name: "missing email", input: CreateMemberInput{Name: "Keelan", Instrument: "Bass", Email: "\t"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeMembersRepo()
			svc := NewService(repo)

			_, err := svc.CreateMember(context.Background(), tc.input)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, repo.members)
		})
	}
}

func TestUpdateMemberPartial(t *testing.T) {
	repo := newFakeMembersRepo()
	repo.members["m-1"] = &Member{ID: "m-1", Name: "Halle", Instrument: "Vocals", Email: "halle@band.com", Phone: "555-0100", IsActive: true}
	before := *repo.members["m-1"]

	svc := NewService(repo)
	inactive := false
	result, err := svc.UpdateMember(context.Background(), UpdateMemberInput{ID: "m-1", IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, result.IsActive)

	stored := *repo.members["m-1"]
	stored.IsActive = before.IsActive
	assert.Equal(t, before, stored)
}

func TestUpdateMemberRejectsBlankRequiredField(t *testing.T) {
	repo := newFakeMembersRepo()
	repo.members["m-1"] = &Member{ID: "m-1", Name: "Halle", Instrument: "Vocals", Email: "halle@band.com", IsActive: true}

	svc := NewService(repo)
	blank := "  "
	_, err := svc.UpdateMember(context.Background(), UpdateMemberInput{ID: "m-1", Email: &blank})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "halle@band.com", repo.members["m-1"].Email)
}

func TestUpdateMemberNotFound(t *testing.T) {
	svc := NewService(newFakeMembersRepo())
	name := "Ghost"

	_, err := svc.UpdateMember(context.Background(), UpdateMemberInput{ID: "missing", Name: &name})
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestDeleteMember(t *testing.T) {
	repo := newFakeMembersRepo()
	repo.members["m-1"] = &Member{ID: "m-1", Name: "Zombie"}

	svc := NewService(repo)
	require.NoError(t, svc.DeleteMember(context.Background(), "m-1"))
	assert.NotContains(t, repo.members, "m-1")

	err := svc.DeleteMember(context.Background(), "m-1")
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestListMembersPropagatesStoreError(t *testing.T) {
	repo := newFakeMembersRepo()
	repo.failErr = errors.New("connection refused")

	svc := NewService(repo)
	_, err := svc.ListMembers(context.Background())
	assert.ErrorIs(t, err, repo.failErr)
}
