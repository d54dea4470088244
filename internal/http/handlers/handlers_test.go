package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/careerconnect/careerconnect-be/internal/config"
	"github.com/careerconnect/careerconnect-be/internal/payments"
	"github.com/careerconnect/careerconnect-be/internal/server"
	"github.com/careerconnect/careerconnect-be/internal/storage/memory"
)

const (
	testAdminEmail    = "admin@careerconnect.dev"
	testAdminPassword = "admin-pass"
	testAdminSecret   = "admin-secret"
	testPaymentSecret = "rzp_test_secret"
)

// fakeUploader returns a deterministic URL without touching the network.
type fakeUploader struct{}

func (fakeUploader) Upload(_ context.Context, filename, _ string, r io.Reader) (string, error) {
	_, _ = io.Copy(io.Discard, r)
	return "https://media.test/careerconnect-media/" + filename, nil
}

// fakeMailer records deliveries for assertions.
type fakeMailer struct {
	mu   sync.Mutex
	sent []string
}

func (m *fakeMailer) Send(_ context.Context, to, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to)
	return nil
}

// fakeGateway creates canned orders and verifies real signatures against
// the test secret.
type fakeGateway struct {
	failCreate bool
}

func (g *fakeGateway) CreateOrder(_ context.Context, options map[string]interface{}) (map[string]interface{}, error) {
	if g.failCreate {
		return nil, fmt.Errorf("provider unavailable")
	}
	order := map[string]interface{}{
		"id":       "order_test_1",
		"status":   "created",
		"amount":   options["amount"],
		"currency": options["currency"],
	}
	return order, nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return payments.VerifySignature(testPaymentSecret, orderID, paymentID, signature)
}

type harness struct {
	ts      *httptest.Server
	store   *memory.Store
	mailer  *fakeMailer
	gateway *fakeGateway
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	cfg := config.Config{
		Port:               "0",
		JWTSecret:          "test-secret",
		TokenTTL:           time.Hour,
		AdminEmail:         testAdminEmail,
		AdminPassword:      testAdminPassword,
		AdminSecretKey:     testAdminSecret,
		CORSOrigins:        []string{"*"},
		PDFDir:             t.TempDir(),
		LoginRatePerMinute: 10000,
	}

	store := memory.New()
	mailer := &fakeMailer{}
	gateway := &fakeGateway{}

	srv := server.New(cfg, store, fakeUploader{}, mailer, gateway)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return &harness{ts: ts, store: store, mailer: mailer, gateway: gateway}
}

// postForm submits an urlencoded form, the non-file variant of the
// multipart bodies the frontend sends.
func (h *harness) postForm(t *testing.T, path string, form url.Values, cookie *http.Cookie) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, h.ts.URL+path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return h.do(t, req)
}

func (h *harness) putForm(t *testing.T, path string, form url.Values, cookie *http.Cookie) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPut, h.ts.URL+path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return h.do(t, req)
}

func (h *harness) postJSON(t *testing.T, path string, body any, cookie *http.Cookie) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, h.ts.URL+path, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return h.do(t, req)
}

func (h *harness) get(t *testing.T, path string, cookie *http.Cookie) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, h.ts.URL+path, nil)
	require.NoError(t, err)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return h.do(t, req)
}

func (h *harness) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	return nil
}

// registerUser creates an account through the HTTP surface.
func (h *harness) registerUser(t *testing.T, fullname, email, password, role string) {
	t.Helper()
	resp := h.postForm(t, "/api/v1/user/register", url.Values{
		"fullname":    {fullname},
		"email":       {email},
		"phoneNumber": {"5551234567"},
		"password":    {password},
		"role":        {role},
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	io.Copy(io.Discard, resp.Body)
}

// loginUser logs in and returns the session cookie.
func (h *harness) loginUser(t *testing.T, email, password, role string) *http.Cookie {
	t.Helper()
	resp := h.postJSON(t, "/api/v1/user/login", map[string]string{
		"email":    email,
		"password": password,
		"role":     role,
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	io.Copy(io.Discard, resp.Body)
	return cookie
}
