package practices

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

type ResponseStatus string

const (
	StatusConfirmed ResponseStatus = "confirmed"
	StatusMaybe     ResponseStatus = "maybe"
	StatusDeclined  ResponseStatus = "declined"
	StatusPending   ResponseStatus = "pending"
)

// ParseResponseStatus accepts the four known statuses; an empty value means
// pending.
func ParseResponseStatus(value string) (ResponseStatus, error) {
	switch status := ResponseStatus(strings.ToLower(strings.TrimSpace(value))); status {
	case "":
		return StatusPending, nil
	case StatusConfirmed, StatusMaybe, StatusDeclined, StatusPending:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, value)
	}
}

// MemberResponse is one member's RSVP for a practice. It references the
// member by id only; names are resolved at read time.
type MemberResponse struct {
	MemberID    string         `json:"member"`
	Status      ResponseStatus `json:"status"`
	Note        string         `json:"note,omitempty"`
	RespondedAt time.Time      `json:"responseDate"`
}

// MemberResponses is stored as a single jsonb document on the practice row.
type MemberResponses []MemberResponse

func (r MemberResponses) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (r *MemberResponses) Scan(src any) error {
	var data []byte
	switch value := src.(type) {
	case nil:
		*r = MemberResponses{}
		return nil
	case []byte:
		data = value
	case string:
		data = []byte(value)
	default:
		return errors.New("member responses: unsupported scan type")
	}
	var decoded MemberResponses
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("member responses: %w", err)
	}
	if decoded == nil {
		decoded = MemberResponses{}
	}
	*r = decoded
	return nil
}

func (r MemberResponses) Clone() MemberResponses {
	if r == nil {
		return MemberResponses{}
	}
	out := make(MemberResponses, len(r))
	copy(out, r)
	return out
}

// IndexOf returns the position of the first response for memberID, or -1.
func (r MemberResponses) IndexOf(memberID string) int {
	for i, response := range r {
		if response.MemberID == memberID {
			return i
		}
	}
	return -1
}

type Practice struct {
	ID              string          `gorm:"type:uuid;primaryKey"`
	Title           string          `gorm:"not null"`
	Date            time.Time       `gorm:"type:date;not null;index"`
	Time            string          `gorm:"not null"`
	Location        string          `gorm:"not null"`
	Description     string          `gorm:"not null;default:''"`
	MemberResponses MemberResponses `gorm:"type:jsonb;not null"`
	CreatedAt       time.Time       `gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime"`
}

// MemberSummary is the projection of a member shown next to a response.
// It never carries phone or active flag.
type MemberSummary struct {
	ID         string
	Name       string
	Instrument string
	Email      string
	Unknown    bool
}

type ResolvedResponse struct {
	Member      MemberSummary
	Status      ResponseStatus
	Note        string
	RespondedAt time.Time
}

type PracticeWithResponses struct {
	Practice  Practice
	Responses []ResolvedResponse
}

type MemberResponseInput struct {
	MemberID string
	Status   string
}

type CreatePracticeInput struct {
	Title           string
	Date            time.Time
	Time            string
	Location        string
	Description     string
	MemberResponses []MemberResponseInput
}

type UpdatePracticeInput struct {
	ID              string
	Title           *string
	Date            *time.Time
	Time            *string
	Location        *string
	Description     *string
	MemberResponses *[]MemberResponseInput
}

func (in UpdatePracticeInput) Empty() bool {
	return in.Title == nil && in.Date == nil && in.Time == nil && in.Location == nil &&
		in.Description == nil && in.MemberResponses == nil
}

type UpdateMemberResponseInput struct {
	PracticeID string
	MemberID   string
	Status     string
	Note       *string
}
