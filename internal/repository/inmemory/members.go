package inmemory

import (
	"context"
	"sort"
	"strings"
	"time"

	membersdomain "band-practice-go/internal/domain/members"
)

type MembersRepository struct {
	store *Store
}

func (r *MembersRepository) ListMembers(ctx context.Context) ([]membersdomain.Member, error) {
	r.store.mu.RLock()
	result := make([]membersdomain.Member, 0, len(r.store.members))
	for _, member := range r.store.members {
		result = append(result, member)
	}
	r.store.mu.RUnlock()

	// Case-insensitive, like the Postgres collation order.
	sort.SliceStable(result, func(i, j int) bool {
		left, right := strings.ToLower(result[i].Name), strings.ToLower(result[j].Name)
		if left != right {
			return left < right
		}
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *MembersRepository) GetMember(ctx context.Context, id string) (*membersdomain.Member, error) {
	r.store.mu.RLock()
	member, ok := r.store.members[id]
	r.store.mu.RUnlock()
	if !ok {
		return nil, membersdomain.ErrMemberNotFound
	}
	return &member, nil
}

func (r *MembersRepository) CreateMember(ctx context.Context, member *membersdomain.Member) error {
	now := time.Now().UTC()
	if member.CreatedAt.IsZero() {
		member.CreatedAt = now
	}
	member.UpdatedAt = now

	r.store.mu.Lock()
	r.store.members[member.ID] = *member
	r.store.mu.Unlock()
	return nil
}

func (r *MembersRepository) UpdateMember(ctx context.Context, member *membersdomain.Member) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.members[member.ID]
	if !ok {
		return membersdomain.ErrMemberNotFound
	}
	member.CreatedAt = current.CreatedAt
	member.UpdatedAt = time.Now().UTC()
	r.store.members[member.ID] = *member
	return nil
}

func (r *MembersRepository) DeleteMember(ctx context.Context, id string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.members[id]; !ok {
		return false, nil
	}
	delete(r.store.members, id)
	return true, nil
}

func (r *MembersRepository) DeleteAll(ctx context.Context) error {
	r.store.mu.Lock()
	r.store.members = make(map[string]membersdomain.Member)
	r.store.mu.Unlock()
	return nil
}
