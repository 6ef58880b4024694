package members

import "time"

type Member struct {
	ID         string    `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"not null;index"`
	Instrument string    `gorm:"not null"`
	Email      string    `gorm:"not null"`
	Phone      string    `gorm:"not null;default:''"`
	IsActive   bool      `gorm:"column:is_active;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

type CreateMemberInput struct {
	Name       string
	Instrument string
	Email      string
	Phone      string
	IsActive   *bool
}

// UpdateMemberInput carries only the fields the caller sent. Nil means
// "leave as is".
type UpdateMemberInput struct {
	ID         string
	Name       *string
	Instrument *string
	Email      *string
	Phone      *string
	IsActive   *bool
}

func (in UpdateMemberInput) Empty() bool {
	return in.Name == nil && in.Instrument == nil && in.Email == nil && in.Phone == nil && in.IsActive == nil
}
