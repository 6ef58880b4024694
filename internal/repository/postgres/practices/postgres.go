package practices

import (
	"context"
	"errors"
	"fmt"
	"time"

	practicesdomain "band-practice-go/internal/domain/practices"
	"band-practice-go/internal/repository/postgres/pgerr"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListPractices(ctx context.Context) ([]practicesdomain.Practice, error) {
	var practices []practicesdomain.Practice
	if err := r.db.WithContext(ctx).
		Order("date asc, created_at asc").
		Find(&practices).Error; err != nil {
		return nil, fmt.Errorf("list practices: %w", err)
	}
	return practices, nil
}

func (r *PostgresRepository) GetPractice(ctx context.Context, id string) (*practicesdomain.Practice, error) {
	var practice practicesdomain.Practice
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&practice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || pgerr.IsInvalidID(err) {
			return nil, practicesdomain.ErrPracticeNotFound
		}
		return nil, fmt.Errorf("get practice: %w", err)
	}
	return &practice, nil
}

func (r *PostgresRepository) CreatePractice(ctx context.Context, practice *practicesdomain.Practice) error {
	if practice.MemberResponses == nil {
		practice.MemberResponses = practicesdomain.MemberResponses{}
	}
	if err := r.db.WithContext(ctx).Create(practice).Error; err != nil {
		return fmt.Errorf("create practice: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpdatePractice(ctx context.Context, practice *practicesdomain.Practice) error {
	result := r.db.WithContext(ctx).
		Model(&practicesdomain.Practice{}).
		Where("id = ?", practice.ID).
		Updates(map[string]interface{}{
			"title":            practice.Title,
			"date":             practice.Date.Format(time.DateOnly),
			"time":             practice.Time,
			"location":         practice.Location,
			"description":      practice.Description,
			"member_responses": practice.MemberResponses,
		})
	if result.Error != nil {
		return fmt.Errorf("update practice: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return practicesdomain.ErrPracticeNotFound
	}
	return nil
}

// SaveMemberResponses rewrites the response document of one practice.
// Concurrent writers race; the last one wins.
func (r *PostgresRepository) SaveMemberResponses(ctx context.Context, practiceID string, responses practicesdomain.MemberResponses) error {
	result := r.db.WithContext(ctx).
		Model(&practicesdomain.Practice{}).
		Where("id = ?", practiceID).
		Update("member_responses", responses)
	if result.Error != nil {
		return fmt.Errorf("save member responses: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return practicesdomain.ErrPracticeNotFound
	}
	return nil
}

func (r *PostgresRepository) DeletePractice(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&practicesdomain.Practice{}, "id = ?", id)
	if result.Error != nil {
		if pgerr.IsInvalidID(result.Error) {
			return false, nil
		}
		return false, fmt.Errorf("delete practice: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) DeletePracticesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("date < ?", cutoff.Format(time.DateOnly)).
		Delete(&practicesdomain.Practice{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete expired practices: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *PostgresRepository) ListMemberSummaries(ctx context.Context, ids []string) ([]practicesdomain.MemberSummary, error) {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, err := uuid.Parse(id); err == nil {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return []practicesdomain.MemberSummary{}, nil
	}

	type row struct {
		ID         string `gorm:"column:id"`
		Name       string `gorm:"column:name"`
		Instrument string `gorm:"column:instrument"`
		Email      string `gorm:"column:email"`
	}

	var rows []row
	if err := r.db.WithContext(ctx).
		Table("members").
		Select("id, name, instrument, email").
		Where("id IN ?", valid).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list member summaries: %w", err)
	}

	summaries := make([]practicesdomain.MemberSummary, 0, len(rows))
	for _, item := range rows {
		summaries = append(summaries, practicesdomain.MemberSummary{
			ID:         item.ID,
			Name:       item.Name,
			Instrument: item.Instrument,
			Email:      item.Email,
		})
	}
	return summaries, nil
}

// DeleteAll is used by the seed command.
func (r *PostgresRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&practicesdomain.Practice{}).Error
}
