package http

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkdesk/inkdesk/internal/auth"
	"github.com/inkdesk/inkdesk/internal/config"
	"github.com/inkdesk/inkdesk/internal/logger"
	"github.com/inkdesk/inkdesk/internal/service"
	"github.com/inkdesk/inkdesk/models"
)

// fakeInquiryService records calls and returns canned results.
type fakeInquiryService struct {
	result  service.SubmitResult
	errs    []error
	page    models.InquiryPage
	listErr error

	gotFields map[string]string
	gotFiles  []models.FileUpload
	gotPage   int
}

func (f *fakeInquiryService) Submit(_ context.Context, _ string, fields map[string]string, files []models.FileUpload) (service.SubmitResult, []error) {
	f.gotFields = fields
	f.gotFiles = files
	return f.result, f.errs
}

func (f *fakeInquiryService) ListDecrypted(_ context.Context, page int) (models.InquiryPage, error) {
	f.gotPage = page
	return f.page, f.listErr
}

// stubVerifier is a TokenVerifier with a fixed verdict.
type stubVerifier struct {
	verdict bool
}

func (s *stubVerifier) Verify(_ context.Context, _, _ string) bool {
	return s.verdict
}

const (
	testUsername = "studio-admin"
	testPassword = "correct horse battery"
)

type testEnv struct {
	handler  *Handler
	service  *fakeInquiryService
	verifier *stubVerifier
	server   *httptest.Server
	client   *http.Client
}

// newTestEnv stands up the full router with a real guard and session policy
// behind an httptest server. The client keeps cookies and does not follow
// redirects, so tests can assert on Location headers.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.App{
		LockoutThreshold: 5,
		LockoutWindow:    15 * time.Minute,
		BlockThreshold:   3,
		FailureDelay:     0, // no brute-force delay in tests
	}

	guard := auth.NewGuard(auth.NewAttemptStore(), []models.AdminAccount{
		{Username: testUsername, PasswordHash: string(hash)},
	}, cfg, logger.Nop())

	sessions := auth.NewSessionPolicy(scs.New(), time.Hour, logger.Nop())

	svc := &fakeInquiryService{}
	verifier := &stubVerifier{verdict: true}

	h := NewHandler(svc, guard, sessions, verifier, logger.Nop())
	server := httptest.NewServer(h.Init())
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &testEnv{
		handler:  h,
		service:  svc,
		verifier: verifier,
		server:   server,
		client:   client,
	}
}
