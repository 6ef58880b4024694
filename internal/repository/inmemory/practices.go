package inmemory

import (
	"context"
	"sort"
	"time"

	practicesdomain "band-practice-go/internal/domain/practices"
)

type PracticesRepository struct {
	store *Store
}

func (r *PracticesRepository) ListPractices(ctx context.Context) ([]practicesdomain.Practice, error) {
	r.store.mu.RLock()
	result := make([]practicesdomain.Practice, 0, len(r.store.practices))
	for _, practice := range r.store.practices {
		result = append(result, clonePractice(practice))
	}
	r.store.mu.RUnlock()

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *PracticesRepository) GetPractice(ctx context.Context, id string) (*practicesdomain.Practice, error) {
	r.store.mu.RLock()
	practice, ok := r.store.practices[id]
	r.store.mu.RUnlock()
	if !ok {
		return nil, practicesdomain.ErrPracticeNotFound
	}
	practice = clonePractice(practice)
	return &practice, nil
}

func (r *PracticesRepository) CreatePractice(ctx context.Context, practice *practicesdomain.Practice) error {
	now := time.Now().UTC()
	if practice.CreatedAt.IsZero() {
		practice.CreatedAt = now
	}
	practice.UpdatedAt = now
	if practice.MemberResponses == nil {
		practice.MemberResponses = practicesdomain.MemberResponses{}
	}

	r.store.mu.Lock()
	r.store.practices[practice.ID] = clonePractice(*practice)
	r.store.mu.Unlock()
	return nil
}

func (r *PracticesRepository) UpdatePractice(ctx context.Context, practice *practicesdomain.Practice) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.practices[practice.ID]
	if !ok {
		return practicesdomain.ErrPracticeNotFound
	}
	practice.CreatedAt = current.CreatedAt
	practice.UpdatedAt = time.Now().UTC()
	r.store.practices[practice.ID] = clonePractice(*practice)
	return nil
}

func (r *PracticesRepository) SaveMemberResponses(ctx context.Context, practiceID string, responses practicesdomain.MemberResponses) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.practices[practiceID]
	if !ok {
		return practicesdomain.ErrPracticeNotFound
	}
	current.MemberResponses = responses.Clone()
	current.UpdatedAt = time.Now().UTC()
	r.store.practices[practiceID] = current
	return nil
}

func (r *PracticesRepository) DeletePractice(ctx context.Context, id string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.practices[id]; !ok {
		return false, nil
	}
	delete(r.store.practices, id)
	return true, nil
}

func (r *PracticesRepository) DeletePracticesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	year, month, day := cutoff.Date()
	limit := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var deleted int64
	for id, practice := range r.store.practices {
		py, pm, pd := practice.Date.Date()
		if time.Date(py, pm, pd, 0, 0, 0, 0, time.UTC).Before(limit) {
			delete(r.store.practices, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *PracticesRepository) ListMemberSummaries(ctx context.Context, ids []string) ([]practicesdomain.MemberSummary, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]practicesdomain.MemberSummary, 0, len(ids))
	for _, id := range ids {
		member, ok := r.store.members[id]
		if !ok {
			continue
		}
		result = append(result, practicesdomain.MemberSummary{
			ID:         member.ID,
			Name:       member.Name,
			Instrument: member.Instrument,
			Email:      member.Email,
		})
	}
	return result, nil
}

func (r *PracticesRepository) DeleteAll(ctx context.Context) error {
	r.store.mu.Lock()
	r.store.practices = make(map[string]practicesdomain.Practice)
	r.store.mu.Unlock()
	return nil
}
