package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	practicesdomain "band-practice-go/internal/domain/practices"
	"github.com/go-chi/chi/v5"
)

type memberResponseRequest struct {
	Member string `json:"member"`
	Status string `json:"status"`
}

type createPracticeRequest struct {
	Title           string                  `json:"title"`
	Date            string                  `json:"date"`
	Time            string                  `json:"time"`
	Location        string                  `json:"location"`
	Description     string                  `json:"description"`
	MemberResponses []memberResponseRequest `json:"memberResponses"`
}

type updatePracticeRequest struct {
	Title           *string                  `json:"title"`
	Date            *string                  `json:"date"`
	Time            *string                  `json:"time"`
	Location        *string                  `json:"location"`
	Description     *string                  `json:"description"`
	MemberResponses *[]memberResponseRequest `json:"memberResponses"`
}

type updateResponseRequest struct {
	Status string  `json:"status"`
	Note   *string `json:"note"`
}

type memberSummaryResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Instrument string `json:"instrument,omitempty"`
	Email      string `json:"email,omitempty"`
	Unknown    bool   `json:"unknown"`
}

type practiceMemberResponse struct {
	Member       memberSummaryResponse `json:"member"`
	Status       string                `json:"status"`
	Note         string                `json:"note,omitempty"`
	ResponseDate time.Time             `json:"responseDate"`
}

type practiceResponse struct {
	ID              string                   `json:"id"`
	Title           string                   `json:"title"`
	Date            string                   `json:"date"`
	Time            string                   `json:"time"`
	Location        string                   `json:"location"`
	Description     string                   `json:"description"`
	MemberResponses []practiceMemberResponse `json:"memberResponses"`
	CreatedAt       time.Time                `json:"createdAt"`
	UpdatedAt       time.Time                `json:"updatedAt"`
}

func (h *Handlers) ListPractices(w http.ResponseWriter, r *http.Request) {
	items, err := h.Practices.ListPractices(r.Context())
	if err != nil {
		h.log.InternalError("practices.list: list practices failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]practiceResponse, 0, len(items))
	for i := range items {
		response = append(response, toPracticeResponse(&items[i]))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetPractice(w http.ResponseWriter, r *http.Request) {
	practiceID := strings.TrimSpace(chi.URLParam(r, "id"))

	result, err := h.Practices.GetPractice(r.Context(), practiceID)
	if err != nil {
		h.writePracticeError(w, "practices.get", err, "practice_id", practiceID)
		return
	}

	writeJSON(w, http.StatusOK, toPracticeResponse(result))
}

func (h *Handlers) CreatePractice(w http.ResponseWriter, r *http.Request) {
	var req createPracticeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	date, err := parseDate(req.Date, h.loc)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	result, err := h.Practices.CreatePractice(r.Context(), practicesdomain.CreatePracticeInput{
		Title:           req.Title,
		Date:            date,
		Time:            req.Time,
		Location:        req.Location,
		Description:     req.Description,
		MemberResponses: toResponseInputs(req.MemberResponses),
	})
	if err != nil {
		h.writePracticeError(w, "practices.create", err)
		return
	}

	writeJSON(w, http.StatusCreated, toPracticeResponse(result))
}

func (h *Handlers) UpdatePractice(w http.ResponseWriter, r *http.Request) {
	var req updatePracticeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	practiceID := strings.TrimSpace(chi.URLParam(r, "id"))
	input := practicesdomain.UpdatePracticeInput{
		ID:          practiceID,
		Title:       req.Title,
		Time:        req.Time,
		Location:    req.Location,
		Description: req.Description,
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date, h.loc)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		input.Date = &date
	}
	if req.MemberResponses != nil {
		responses := toResponseInputs(*req.MemberResponses)
		input.MemberResponses = &responses
	}

	result, err := h.Practices.UpdatePractice(r.Context(), input)
	if err != nil {
		h.writePracticeError(w, "practices.update", err, "practice_id", practiceID)
		return
	}

	writeJSON(w, http.StatusOK, toPracticeResponse(result))
}

func (h *Handlers) DeletePractice(w http.ResponseWriter, r *http.Request) {
	practiceID := strings.TrimSpace(chi.URLParam(r, "id"))

	if err := h.Practices.DeletePractice(r.Context(), practiceID); err != nil {
		h.writePracticeError(w, "practices.delete", err, "practice_id", practiceID)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Practice deleted successfully"})
}

func (h *Handlers) UpdateMemberResponse(w http.ResponseWriter, r *http.Request) {
	var req updateResponseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	practiceID := strings.TrimSpace(chi.URLParam(r, "id"))
	memberID := strings.TrimSpace(chi.URLParam(r, "member_id"))

	result, err := h.Practices.UpdateMemberResponse(r.Context(), practicesdomain.UpdateMemberResponseInput{
		PracticeID: practiceID,
		MemberID:   memberID,
		Status:     req.Status,
		Note:       req.Note,
	})
	if err != nil {
		h.writePracticeError(w, "practices.update_response", err, "practice_id", practiceID, "member_id", memberID)
		return
	}

	writeJSON(w, http.StatusOK, toPracticeResponse(result))
}

func (h *Handlers) writePracticeError(w http.ResponseWriter, op string, err error, args ...any) {
	switch {
	case errors.Is(err, practicesdomain.ErrPracticeNotFound):
		h.log.BusinessError(op+": practice not found", err, args...)
		writeError(w, http.StatusNotFound, "practice_not_found", "Practice not found")
	case errors.Is(err, practicesdomain.ErrResponseNotFound):
		h.log.BusinessError(op+": member response not found", err, args...)
		writeError(w, http.StatusNotFound, "response_not_found", "Member response not found")
	case errors.Is(err, practicesdomain.ErrInvalidInput), errors.Is(err, practicesdomain.ErrInvalidStatus):
		h.log.BusinessError(op+": invalid input", err, args...)
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		h.log.InternalError(op+": store failure", err, args...)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func toResponseInputs(items []memberResponseRequest) []practicesdomain.MemberResponseInput {
	inputs := make([]practicesdomain.MemberResponseInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, practicesdomain.MemberResponseInput{
			MemberID: item.Member,
			Status:   item.Status,
		})
	}
	return inputs
}

func toPracticeResponse(item *practicesdomain.PracticeWithResponses) practiceResponse {
	responses := make([]practiceMemberResponse, 0, len(item.Responses))
	for _, response := range item.Responses {
		responses = append(responses, practiceMemberResponse{
			Member: memberSummaryResponse{
				ID:         response.Member.ID,
				Name:       response.Member.Name,
				Instrument: response.Member.Instrument,
				Email:      response.Member.Email,
				Unknown:    response.Member.Unknown,
			},
			Status:       string(response.Status),
			Note:         response.Note,
			ResponseDate: response.RespondedAt,
		})
	}

	practice := item.Practice
	return practiceResponse{
		ID:              practice.ID,
		Title:           practice.Title,
		Date:            formatDate(practice.Date),
		Time:            practice.Time,
		Location:        practice.Location,
		Description:     practice.Description,
		MemberResponses: responses,
		CreatedAt:       practice.CreatedAt,
		UpdatedAt:       practice.UpdatedAt,
	}
}
