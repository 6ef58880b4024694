package members

import (
	"context"
	"errors"
	"fmt"

	membersdomain "band-practice-go/internal/domain/members"
	"band-practice-go/internal/repository/postgres/pgerr"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListMembers(ctx context.Context) ([]membersdomain.Member, error) {
	var members []membersdomain.Member
	if err := r.db.WithContext(ctx).
		Order("name asc, created_at asc").
		Find(&members).Error; err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

func (r *PostgresRepository) GetMember(ctx context.Context, id string) (*membersdomain.Member, error) {
	var member membersdomain.Member
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || pgerr.IsInvalidID(err) {
			return nil, membersdomain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return &member, nil
}

func (r *PostgresRepository) CreateMember(ctx context.Context, member *membersdomain.Member) error {
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		return fmt.Errorf("create member: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpdateMember(ctx context.Context, member *membersdomain.Member) error {
	result := r.db.WithContext(ctx).
		Model(&membersdomain.Member{}).
		Where("id = ?", member.ID).
		Updates(map[string]interface{}{
			"name":       member.Name,
			"instrument": member.Instrument,
			"email":      member.Email,
			"phone":      member.Phone,
			"is_active":  member.IsActive,
		})
	if result.Error != nil {
		return fmt.Errorf("update member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return membersdomain.ErrMemberNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteMember(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&membersdomain.Member{}, "id = ?", id)
	if result.Error != nil {
		if pgerr.IsInvalidID(result.Error) {
			return false, nil
		}
		return false, fmt.Errorf("delete member: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// DeleteAll is used by the seed command.
func (r *PostgresRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&membersdomain.Member{}).Error
}
