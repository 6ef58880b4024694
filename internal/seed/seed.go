package seed

import (
	"context"
	"fmt"
	"time"

	membersdomain "band-practice-go/internal/domain/members"
	practicesdomain "band-practice-go/internal/domain/practices"
	"band-practice-go/pkg/logger"
)

type Wiper interface {
	DeleteAll(ctx context.Context) error
}

type Summary struct {
	Members   int
	Practices int
}

// Seeder replaces the whole data set with fixtures. Every seeded practice
// gets a pending response from every seeded member.
type Seeder struct {
	members   *membersdomain.Service
	practices *practicesdomain.Service
	wipers    []Wiper
	loc       *time.Location
	log       logger.Logger
}

func NewSeeder(members *membersdomain.Service, practices *practicesdomain.Service, loc *time.Location, log logger.Logger, wipers ...Wiper) *Seeder {
	if loc == nil {
		loc = time.Local
	}
	return &Seeder{
		members:   members,
		practices: practices,
		wipers:    wipers,
		loc:       loc,
		log:       log,
	}
}

func (s *Seeder) Run(ctx context.Context, fixtures Fixtures, now time.Time) (Summary, error) {
	for _, wiper := range s.wipers {
		if err := wiper.DeleteAll(ctx); err != nil {
			return Summary{}, fmt.Errorf("clear data: %w", err)
		}
	}
	s.log.Info("seed: cleared existing data")

	responses := make([]practicesdomain.MemberResponseInput, 0, len(fixtures.Members))
	for _, fixture := range fixtures.Members {
		member, err := s.members.CreateMember(ctx, membersdomain.CreateMemberInput{
			Name:       fixture.Name,
			Instrument: fixture.Instrument,
			Email:      fixture.Email,
			Phone:      fixture.Phone,
		})
		if err != nil {
			return Summary{}, fmt.Errorf("create member %q: %w", fixture.Name, err)
		}
		responses = append(responses, practicesdomain.MemberResponseInput{
			MemberID: member.ID,
			Status:   string(practicesdomain.StatusPending),
		})
	}
	s.log.Info("seed: created members", "count", len(fixtures.Members))

	year, month, day := now.In(s.loc).Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	for _, fixture := range fixtures.Practices {
		_, err := s.practices.CreatePractice(ctx, practicesdomain.CreatePracticeInput{
			Title:           fixture.Title,
			Date:            today.AddDate(0, 0, fixture.DaysFromNow),
			Time:            fixture.Time,
			Location:        fixture.Location,
			Description:     fixture.Description,
			MemberResponses: responses,
		})
		if err != nil {
			return Summary{}, fmt.Errorf("create practice %q: %w", fixture.Title, err)
		}
	}
	s.log.Info("seed: created practices", "count", len(fixtures.Practices))

	return Summary{Members: len(fixtures.Members), Practices: len(fixtures.Practices)}, nil
}
