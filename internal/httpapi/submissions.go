package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/dmitrymomot/vaptnotify/internal/notification"
)

// maxBodySize bounds a submission payload.
const maxBodySize = 1 << 20

type submissionsHandler struct {
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
}

// create accepts one submission and emails it synchronously.
func (h *submissionsHandler) create(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.UseNumber()

	var rec notification.Record
	if err := dec.Decode(&rec); err != nil || rec == nil || !atEOF(dec) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "request body must be a single JSON object"})
		return
	}

	h.stamp(r, rec)
	id := rec.Text("id")
	ctx := r.Context()

	delivered, err := h.notifier.Send(ctx, rec)
	switch {
	case errors.Is(err, notification.ErrNotConfigured):
		h.logger.WarnContext(ctx, "email service not configured", slog.String("submission_id", id))
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error(), ID: id})
		return
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to send submission email",
			slog.String("submission_id", id),
			slog.Any("error", err),
		)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: notification.ErrDeliveryFailed.Error(), ID: id})
		return
	}

	writeJSON(w, http.StatusOK, submissionResponse{ID: id, Delivered: delivered})
}

// atEOF reports whether nothing but whitespace follows the decoded value.
func atEOF(dec *json.Decoder) bool {
	_, err := dec.Token()
	return errors.Is(err, io.EOF)
}

// stamp fills the submission metadata the client did not provide.
func (h *submissionsHandler) stamp(r *http.Request, rec notification.Record) {
	if !rec.Has("id") {
		rec["id"] = h.newID()
	}
	if !rec.Has("submittedAt") && !rec.Has("submittedDateTime") {
		rec["submittedAt"] = h.now().UTC().Format(time.RFC3339)
	}
	if !rec.Has("userIPAddress") {
		if ip := clientIP(r); ip != "" {
			rec["userIPAddress"] = ip
		}
	}
}

// clientIP strips the port from RemoteAddr. With a trusted proxy, RealIP
// middleware has already replaced it with the forwarded address.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
