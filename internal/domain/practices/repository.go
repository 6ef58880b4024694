package practices

import (
	"context"
	"time"
)

type Repository interface {
	// ListPractices returns every practice ordered by date ascending.
	ListPractices(ctx context.Context) ([]Practice, error)
	GetPractice(ctx context.Context, id string) (*Practice, error)
	CreatePractice(ctx context.Context, practice *Practice) error
	UpdatePractice(ctx context.Context, practice *Practice) error
	SaveMemberResponses(ctx context.Context, practiceID string, responses MemberResponses) error
	DeletePractice(ctx context.Context, id string) (bool, error)
	// DeletePracticesBefore removes every practice whose date is strictly
	// before the civil date of cutoff.
	DeletePracticesBefore(ctx context.Context, cutoff time.Time) (int64, error)
	// ListMemberSummaries returns the members that exist among ids. Missing
	// ids are simply absent from the result.
	ListMemberSummaries(ctx context.Context, ids []string) ([]MemberSummary, error)
}
