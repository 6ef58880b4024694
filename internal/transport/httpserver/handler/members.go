package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	membersdomain "band-practice-go/internal/domain/members"
	"github.com/go-chi/chi/v5"
)

type createMemberRequest struct {
	Name       string `json:"name"`
	Instrument string `json:"instrument"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	IsActive   *bool  `json:"isActive"`
}

type updateMemberRequest struct {
	Name       *string `json:"name"`
	Instrument *string `json:"instrument"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	IsActive   *bool   `json:"isActive"`
}

type memberResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Instrument string    `json:"instrument"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (h *Handlers) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.Members.ListMembers(r.Context())
	if err != nil {
		h.log.InternalError("members.list: list members failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]memberResponse, 0, len(members))
	for _, member := range members {
		response = append(response, toMemberResponse(&member))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetMember(w http.ResponseWriter, r *http.Request) {
	memberID := strings.TrimSpace(chi.URLParam(r, "id"))

	member, err := h.Members.GetMember(r.Context(), memberID)
	if err != nil {
		h.writeMemberError(w, "members.get", err, "member_id", memberID)
		return
	}

	writeJSON(w, http.StatusOK, toMemberResponse(member))
}

func (h *Handlers) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req createMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	member, err := h.Members.CreateMember(r.Context(), membersdomain.CreateMemberInput{
		Name:       req.Name,
		Instrument: req.Instrument,
		Email:      req.Email,
		Phone:      req.Phone,
		IsActive:   req.IsActive,
	})
	if err != nil {
		h.writeMemberError(w, "members.create", err)
		return
	}

	writeJSON(w, http.StatusCreated, toMemberResponse(member))
}

func (h *Handlers) UpdateMember(w http.ResponseWriter, r *http.Request) {
	var req updateMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	memberID := strings.TrimSpace(chi.URLParam(r, "id"))

	member, err := h.Members.UpdateMember(r.Context(), membersdomain.UpdateMemberInput{
		ID:         memberID,
		Name:       req.Name,
		Instrument: req.Instrument,
		Email:      req.Email,
		Phone:      req.Phone,
		IsActive:   req.IsActive,
	})
	if err != nil {
		h.writeMemberError(w, "members.update", err, "member_id", memberID)
		return
	}

	writeJSON(w, http.StatusOK, toMemberResponse(member))
}

func (h *Handlers) DeleteMember(w http.ResponseWriter, r *http.Request) {
	memberID := strings.TrimSpace(chi.URLParam(r, "id"))

	if err := h.Members.DeleteMember(r.Context(), memberID); err != nil {
		h.writeMemberError(w, "members.delete", err, "member_id", memberID)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Member deleted successfully"})
}

func (h *Handlers) writeMemberError(w http.ResponseWriter, op string, err error, args ...any) {
	switch {
	case errors.Is(err, membersdomain.ErrMemberNotFound):
		h.log.BusinessError(op+": member not found", err, args...)
		writeError(w, http.StatusNotFound, "member_not_found", "Member not found")
	case errors.Is(err, membersdomain.ErrInvalidInput):
		h.log.BusinessError(op+": invalid input", err, args...)
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		h.log.InternalError(op+": store failure", err, args...)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func toMemberResponse(member *membersdomain.Member) memberResponse {
	return memberResponse{
		ID:         member.ID,
		Name:       member.Name,
		Instrument: member.Instrument,
		Email:      member.Email,
		Phone:      member.Phone,
		IsActive:   member.IsActive,
		CreatedAt:  member.CreatedAt,
		UpdatedAt:  member.UpdatedAt,
	}
}
