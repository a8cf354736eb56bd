package flash

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithCookies(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func Test_Signer_AddThenPop(t *testing.T) {
	signer := NewSigner("test-secret")

	rec := httptest.NewRecorder()
	signer.Add(rec, CategorySuccess, "Book added.")

	msgs := signer.Pop(httptest.NewRecorder(), requestWithCookies(rec))

	require.Len(t, msgs, 1)
	assert.Equal(t, CategorySuccess, msgs[0].Category)
	assert.Equal(t, "Book added.", msgs[0].Text)
}

func Test_Signer_PopClearsCookie(t *testing.T) {
	signer := NewSigner("test-secret")

	rec := httptest.NewRecorder()
	signer.Add(rec, CategoryInfo, "Loan already returned.")

	popRec := httptest.NewRecorder()
	signer.Pop(popRec, requestWithCookies(rec))

	cookies := popRec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "flash", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func Test_Signer_NoCookie(t *testing.T) {
	signer := NewSigner("test-secret")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	msgs := signer.Pop(httptest.NewRecorder(), req)

	assert.Empty(t, msgs)
}

func Test_Signer_RejectsTamperedPayload(t *testing.T) {
	signer := NewSigner("test-secret")

	rec := httptest.NewRecorder()
	signer.Add(rec, CategorySuccess, "Book added.")

	cookie := rec.Result().Cookies()[0]
	encoded, signature, ok := strings.Cut(cookie.Value, ".")
	require.True(t, ok)

	// Flip the payload, keep the signature.
	tampered := strings.ToUpper(encoded) + "." + signature
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: tampered})

	msgs := signer.Pop(httptest.NewRecorder(), req)
	assert.Empty(t, msgs)
}

func Test_Signer_RejectsWrongSecret(t *testing.T) {
	signer := NewSigner("test-secret")
	other := NewSigner("other-secret")

	rec := httptest.NewRecorder()
	signer.Add(rec, CategoryWarning, "Selected copy is not available.")

	msgs := other.Pop(httptest.NewRecorder(), requestWithCookies(rec))
	assert.Empty(t, msgs)
}

func Test_Signer_RejectsMalformedValue(t *testing.T) {
	signer := NewSigner("test-secret")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "flash", Value: "not-a-signed-value"})

	msgs := signer.Pop(httptest.NewRecorder(), req)
	assert.Empty(t, msgs)
}
