package handler

import (
	"net/http"
	"time"
)

type cleanupResponse struct {
	Message      string    `json:"message"`
	DeletedCount int64     `json:"deletedCount"`
	CleanedAt    time.Time `json:"cleanedAt"`
}

// RunCleanup purges expired practices synchronously. Unlike the scheduled
// run, a failure here is reported to the caller.
func (h *Handlers) RunCleanup(w http.ResponseWriter, r *http.Request) {
	result, err := h.Cleanup.Run(r.Context())
	if err != nil {
		h.log.InternalError("cleanup.run: manual cleanup failed", err)
		writeError(w, http.StatusInternalServerError, "cleanup_failed", "Cleanup failed")
		return
	}

	writeJSON(w, http.StatusOK, cleanupResponse{
		Message:      "Cleanup completed successfully",
		DeletedCount: result.DeletedCount,
		CleanedAt:    result.CleanedAt,
	})
}
