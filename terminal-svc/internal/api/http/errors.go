package httpapi

import (
	"errors"
	"net/http"

	"restopos/terminal-svc/internal/apiclient"
	"restopos/terminal-svc/internal/domain"
	"restopos/terminal-svc/internal/receipt"
	"restopos/terminal-svc/internal/service"
)

const loginPath = "/login"

type errorResponse struct {
	Error    string                  `json:"error,omitempty"`
	Errors   domain.ValidationErrors `json:"errors,omitempty"`
	Redirect string                  `json:"redirect,omitempty"`
	Confirm  bool                    `json:"confirm,omitempty"`
}

var conflicts = map[error]string{
	service.ErrEmptyCart:            "Keranjang masih kosong",
	service.ErrSubmissionInFlight:   "Pesanan sedang dikirim",
	service.ErrOrderClosed:          "Pesanan sudah selesai",
	service.ErrOrderNotClosed:       "Pesanan belum selesai",
	service.ErrNoOpenOrder:          "Meja belum memiliki pesanan aktif",
	service.ErrTableOccupied:        "Status meja yang sedang terisi tidak dapat diubah",
	service.ErrTableStatusUnchanged: "Meja sudah memiliki status tersebut",
}

func isUnauthorized(err error) bool {
	return errors.Is(err, apiclient.ErrUnauthorized) || errors.Is(err, service.ErrSessionNotFound)
}

// writeError maps service errors onto status codes. An expired or revoked
// backend token also ends the local session.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, session *domain.Session, err error) {
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Errors: verrs})
		return
	}

	if isUnauthorized(err) {
		if session != nil {
			h.endSession(r.Context(), session)
		}
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Sesi berakhir, silakan login kembali", Redirect: loginPath})
		return
	}

	notice := ""
	var opErr *service.OperationError
	if errors.As(err, &opErr) {
		notice = opErr.Notice
	}

	switch {
	case errors.Is(err, service.ErrConfirmationRequired):
		writeJSON(w, http.StatusConflict, errorResponse{Error: service.ConfirmRemoveItem, Confirm: true})
		return
	case errors.Is(err, service.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "Anda tidak memiliki akses untuk tindakan ini"})
		return
	case errors.Is(err, service.ErrScreenNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Layar pesanan tidak ditemukan", Redirect: "/table"})
		return
	case errors.Is(err, apiclient.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: notFoundMessage(notice), Redirect: notFoundRedirect(notice)})
		return
	case errors.Is(err, receipt.ErrUnknownFormat):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Format struk tidak dikenal"})
		return
	}

	for target, message := range conflicts {
		if errors.Is(err, target) {
			writeJSON(w, http.StatusConflict, errorResponse{Error: message})
			return
		}
	}

	h.log.WithError(err).WithField("path", r.URL.Path).Error("Request failed")
	if notice == "" {
		notice = service.NoticeLoadFailed
	}
	writeJSON(w, http.StatusBadGateway, errorResponse{Error: notice})
}

func notFoundMessage(notice string) string {
	if notice == "" || notice == service.NoticeLoadFailed {
		return "Data tidak ditemukan"
	}
	return notice
}

func notFoundRedirect(notice string) string {
	switch notice {
	case service.NoticeOrderNotFound:
		return "/orders"
	case service.NoticeTableNotFound:
		return "/table"
	}
	return ""
}
