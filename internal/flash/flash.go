// Package flash carries one-shot user-facing messages across the
// POST-redirect-GET cycle in a signed cookie.
package flash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const cookieName = "flash"

// Message categories, matched by the templates for styling.
const (
	CategorySuccess = "success"
	CategoryWarning = "warning"
	CategoryDanger  = "danger"
	CategoryInfo    = "info"
)

// Message is one transient notification shown on the next page view.
type Message struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Signer signs and verifies flash cookies. The secret is used only for
// message signing; the payload itself is not encrypted.
type Signer struct {
	secret []byte
}

// NewSigner creates a Signer keyed with the given secret.
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Add queues one message for the next request from this client.
func (s *Signer) Add(w http.ResponseWriter, category, text string) {
	payload, err := json.Marshal(Message{Category: category, Text: text})
	if err != nil {
		return
	}

	encoded := base64.RawURLEncoding.EncodeToString(payload)
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    encoded + "." + s.sign(payload),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the queued messages and clears the cookie. Missing,
// malformed or tampered cookies yield nothing.
func (s *Signer) Pop(w http.ResponseWriter, r *http.Request) []Message {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return nil
	}

	// Clear regardless of validity, flashes are one-shot.
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	encoded, signature, ok := strings.Cut(cookie.Value, ".")
	if !ok {
		return nil
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}

	if !hmac.Equal([]byte(s.sign(payload)), []byte(signature)) {
		return nil
	}

	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil
	}

	return []Message{msg}
}

func (s *Signer) sign(payload []byte) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(payload)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
