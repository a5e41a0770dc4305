package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/andikanugraha/go-multistore/app/services"
)

const identitySignatureHeader = "X-Identity-Signature"

// IdentityWebhook receives user lifecycle events from the identity
// provider and mirrors them into the local users table. The payload is
// authenticated with an HMAC-SHA256 signature over the raw body.
func (h *Handler) IdentityWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "failed to read webhook body"})
		return
	}

	if !h.verifyIdentitySignature(body, r.Header.Get(identitySignatureHeader)) {
		log.Printf("IdentityWebhook: rejected request with bad signature from %s", r.RemoteAddr)
		h.render.JSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid webhook signature"})
		return
	}

	var event services.IdentityEvent
	if err := json.Unmarshal(body, &event); err != nil {
		h.render.JSON(w, http.StatusBadRequest, errorResponse{Error: "invalid webhook payload"})
		return
	}

	user, err := h.userSyncSvc.HandleEvent(r.Context(), &event)
	if err != nil {
		h.renderServiceError(w, err)
		return
	}

	if user == nil {
		h.render.JSON(w, http.StatusOK, map[string]string{"message": "event processed"})
		return
	}
	h.render.JSON(w, http.StatusOK, user)
}

func (h *Handler) verifyIdentitySignature(body []byte, signature string) bool {
	if h.webhookSecret == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(h.webhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
