package inmemory

import (
	"sync"

	membersdomain "band-practice-go/internal/domain/members"
	practicesdomain "band-practice-go/internal/domain/practices"
)

// Store keeps members and practices in process memory. Every operation
// copies values in and out, so callers never share state with the store.
type Store struct {
	mu        sync.RWMutex
	members   map[string]membersdomain.Member
	practices map[string]practicesdomain.Practice
}

func NewStore() *Store {
	return &Store{
		members:   make(map[string]membersdomain.Member),
		practices: make(map[string]practicesdomain.Practice),
	}
}

func (s *Store) Members() *MembersRepository {
	return &MembersRepository{store: s}
}

func (s *Store) Practices() *PracticesRepository {
	return &PracticesRepository{store: s}
}

func clonePractice(practice practicesdomain.Practice) practicesdomain.Practice {
	practice.MemberResponses = practice.MemberResponses.Clone()
	return practice
}
