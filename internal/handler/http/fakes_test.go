package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/chronos/internal/config"
	"github.com/MKhiriev/chronos/internal/logger"
	"github.com/MKhiriev/chronos/internal/ratelimit"
	"github.com/MKhiriev/chronos/internal/service"
	"github.com/MKhiriev/chronos/models"
)

// Function-field fakes. A nil field panics, which fails the test that
// reached an unexpected call.

type fakeAuthService struct {
	checkEmail func(ctx context.Context, email string) (bool, error)
	requestOTP func(ctx context.Context, email string) (models.OTPRequestResult, error)
	verifyOTP  func(ctx context.Context, email, code string) (models.Session, error)
}

func (f *fakeAuthService) CheckEmail(ctx context.Context, email string) (bool, error) {
	return f.checkEmail(ctx, email)
}

func (f *fakeAuthService) RequestOTP(ctx context.Context, email string) (models.OTPRequestResult, error) {
	return f.requestOTP(ctx, email)
}

func (f *fakeAuthService) VerifyOTP(ctx context.Context, email, code string) (models.Session, error) {
	return f.verifyOTP(ctx, email, code)
}

type fakeSessionService struct {
	issue            func(ctx context.Context, session models.Session) (models.SessionCookies, error)
	read             func(ctx context.Context, value string) (models.Session, error)
	refresh          func(ctx context.Context, refreshToken string) (models.SessionCookies, error)
	parseAccessToken func(ctx context.Context, accessToken string) (models.Session, error)
}

func (f *fakeSessionService) Issue(ctx context.Context, session models.Session) (models.SessionCookies, error) {
	return f.issue(ctx, session)
}

func (f *fakeSessionService) Read(ctx context.Context, value string) (models.Session, error) {
	return f.read(ctx, value)
}

func (f *fakeSessionService) Refresh(ctx context.Context, refreshToken string) (models.SessionCookies, error) {
	return f.refresh(ctx, refreshToken)
}

func (f *fakeSessionService) ParseAccessToken(ctx context.Context, accessToken string) (models.Session, error) {
	return f.parseAccessToken(ctx, accessToken)
}

type fakeOfficerService struct {
	list             func(ctx context.Context) ([]models.Officer, error)
	get              func(ctx context.Context, officerID string) (models.OfficerDetail, error)
	create           func(ctx context.Context, officer models.Officer) (models.Officer, error)
	update           func(ctx context.Context, update models.OfficerUpdate) (models.Officer, error)
	remove           func(ctx context.Context, officerID string) error
	setCompetency    func(ctx context.Context, competency models.OfficerCompetency) (models.OfficerCompetency, error)
	removeCompetency func(ctx context.Context, officerID string, competencyID int64) error
	addStint         func(ctx context.Context, stint models.OfficerStint) (models.OfficerStint, error)
	removeStint      func(ctx context.Context, officerID string, stintID int64) error
}

func (f *fakeOfficerService) ListOfficers(ctx context.Context) ([]models.Officer, error) {
	return f.list(ctx)
}

func (f *fakeOfficerService) GetOfficer(ctx context.Context, officerID string) (models.OfficerDetail, error) {
	return f.get(ctx, officerID)
}

func (f *fakeOfficerService) CreateOfficer(ctx context.Context, officer models.Officer) (models.Officer, error) {
	return f.create(ctx, officer)
}

func (f *fakeOfficerService) UpdateOfficer(ctx context.Context, update models.OfficerUpdate) (models.Officer, error) {
	return f.update(ctx, update)
}

func (f *fakeOfficerService) DeleteOfficer(ctx context.Context, officerID string) error {
	return f.remove(ctx, officerID)
}

func (f *fakeOfficerService) SetOfficerCompetency(ctx context.Context, competency models.OfficerCompetency) (models.OfficerCompetency, error) {
	return f.setCompetency(ctx, competency)
}

func (f *fakeOfficerService) RemoveOfficerCompetency(ctx context.Context, officerID string, competencyID int64) error {
	return f.removeCompetency(ctx, officerID, competencyID)
}

func (f *fakeOfficerService) AddOfficerStint(ctx context.Context, stint models.OfficerStint) (models.OfficerStint, error) {
	return f.addStint(ctx, stint)
}

func (f *fakeOfficerService) RemoveOfficerStint(ctx context.Context, officerID string, stintID int64) error {
	return f.removeStint(ctx, officerID, stintID)
}

type fakePositionService struct {
	list          func(ctx context.Context) ([]models.PositionWithSuccessors, error)
	get           func(ctx context.Context, positionID string) (models.PositionWithSuccessors, error)
	create        func(ctx context.Context, request models.CreatePositionRequest) (models.PositionWithSuccessors, error)
	update        func(ctx context.Context, update models.PositionUpdate) (models.PositionWithSuccessors, error)
	remove        func(ctx context.Context, positionID string) error
	setSuccessors func(ctx context.Context, positionID string, tier models.SuccessionType, officerIDs []string) (models.PositionWithSuccessors, error)
}

func (f *fakePositionService) ListPositions(ctx context.Context) ([]models.PositionWithSuccessors, error) {
	return f.list(ctx)
}

func (f *fakePositionService) GetPosition(ctx context.Context, positionID string) (models.PositionWithSuccessors, error) {
	return f.get(ctx, positionID)
}

func (f *fakePositionService) CreatePosition(ctx context.Context, request models.CreatePositionRequest) (models.PositionWithSuccessors, error) {
	return f.create(ctx, request)
}

func (f *fakePositionService) UpdatePosition(ctx context.Context, update models.PositionUpdate) (models.PositionWithSuccessors, error) {
	return f.update(ctx, update)
}

func (f *fakePositionService) DeletePosition(ctx context.Context, positionID string) error {
	return f.remove(ctx, positionID)
}

func (f *fakePositionService) SetSuccessors(ctx context.Context, positionID string, tier models.SuccessionType, officerIDs []string) (models.PositionWithSuccessors, error) {
	return f.setSuccessors(ctx, positionID, tier, officerIDs)
}

type fakeCompetencyService struct {
	list   func(ctx context.Context) ([]models.HRCompetency, error)
	get    func(ctx context.Context, competencyID int64) (models.HRCompetency, error)
	create func(ctx context.Context, competency models.HRCompetency) (models.HRCompetency, error)
	update func(ctx context.Context, competency models.HRCompetency) (models.HRCompetency, error)
	remove func(ctx context.Context, competencyID int64) error
}

func (f *fakeCompetencyService) ListCompetencies(ctx context.Context) ([]models.HRCompetency, error) {
	return f.list(ctx)
}

func (f *fakeCompetencyService) GetCompetency(ctx context.Context, competencyID int64) (models.HRCompetency, error) {
	return f.get(ctx, competencyID)
}

func (f *fakeCompetencyService) CreateCompetency(ctx context.Context, competency models.HRCompetency) (models.HRCompetency, error) {
	return f.create(ctx, competency)
}

func (f *fakeCompetencyService) UpdateCompetency(ctx context.Context, competency models.HRCompetency) (models.HRCompetency, error) {
	return f.update(ctx, competency)
}

func (f *fakeCompetencyService) DeleteCompetency(ctx context.Context, competencyID int64) error {
	return f.remove(ctx, competencyID)
}

type fakeStintService struct {
	list   func(ctx context.Context) ([]models.OOAStint, error)
	get    func(ctx context.Context, stintID int64) (models.OOAStint, error)
	create func(ctx context.Context, stint models.OOAStint) (models.OOAStint, error)
	update func(ctx context.Context, stint models.OOAStint) (models.OOAStint, error)
	remove func(ctx context.Context, stintID int64) error
}

func (f *fakeStintService) ListStints(ctx context.Context) ([]models.OOAStint, error) {
	return f.list(ctx)
}

func (f *fakeStintService) GetStint(ctx context.Context, stintID int64) (models.OOAStint, error) {
	return f.get(ctx, stintID)
}

func (f *fakeStintService) CreateStint(ctx context.Context, stint models.OOAStint) (models.OOAStint, error) {
	return f.create(ctx, stint)
}

func (f *fakeStintService) UpdateStint(ctx context.Context, stint models.OOAStint) (models.OOAStint, error) {
	return f.update(ctx, stint)
}

func (f *fakeStintService) DeleteStint(ctx context.Context, stintID int64) error {
	return f.remove(ctx, stintID)
}

type fakeRemarkService struct {
	list func(ctx context.Context, officerID string) ([]models.OfficerRemark, error)
	add  func(ctx context.Context, remark models.OfficerRemark) (models.OfficerRemark, error)
}

func (f *fakeRemarkService) ListRemarks(ctx context.Context, officerID string) ([]models.OfficerRemark, error) {
	return f.list(ctx, officerID)
}

func (f *fakeRemarkService) AddRemark(ctx context.Context, remark models.OfficerRemark) (models.OfficerRemark, error) {
	return f.add(ctx, remark)
}

type fakeAppInfoService struct{ version string }

func (f *fakeAppInfoService) GetAppVersion(context.Context) string { return f.version }

type fakeHealthService struct{ err error }

func (f *fakeHealthService) Ping(context.Context) error { return f.err }

type fakeLimiter struct {
	err  error
	keys []string
	// denied overrides err for single keys
	denied map[string]error
}

func (f *fakeLimiter) Allow(_ context.Context, key string) error {
	f.keys = append(f.keys, key)
	if err, ok := f.denied[key]; ok {
		return err
	}
	return f.err
}

var _ ratelimit.Limiter = (*fakeLimiter)(nil)

// testServices holds one fake per service so that tests can set only the
// calls they expect.
type testServices struct {
	auth        *fakeAuthService
	session     *fakeSessionService
	officers    *fakeOfficerService
	positions   *fakePositionService
	competency  *fakeCompetencyService
	stints      *fakeStintService
	remarks     *fakeRemarkService
	appInfo     *fakeAppInfoService
	health      *fakeHealthService
	rateLimiter *fakeLimiter
}

func newTestServices() *testServices {
	return &testServices{
		auth:        &fakeAuthService{},
		session:     &fakeSessionService{},
		officers:    &fakeOfficerService{},
		positions:   &fakePositionService{},
		competency:  &fakeCompetencyService{},
		stints:      &fakeStintService{},
		remarks:     &fakeRemarkService{},
		appInfo:     &fakeAppInfoService{version: "v1.0.0"},
		health:      &fakeHealthService{},
		rateLimiter: &fakeLimiter{},
	}
}

func (s *testServices) services() *service.Services {
	return &service.Services{
		AuthService:       s.auth,
		SessionService:    s.session,
		OfficerService:    s.officers,
		PositionService:   s.positions,
		CompetencyService: s.competency,
		StintService:      s.stints,
		RemarkService:     s.remarks,
		AppInfoService:    s.appInfo,
		HealthService:     s.health,
	}
}

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			Environment: config.EnvironmentDevelopment,
			SiteURL:     "http://localhost:3000",
		},
	}
}

func newTestHandler(s *testServices) *Handler {
	return NewHandler(s.services(), s.rateLimiter, testConfig(), logger.Nop())
}

// validSessionReader accepts the cookie value "good" only.
func (s *testServices) validSessionReader() {
	s.session.read = func(_ context.Context, value string) (models.Session, error) {
		if value != "good" {
			return models.Session{}, service.ErrSessionInvalid
		}
		return models.Session{Email: "hr@agency.gov", Authenticated: true}, nil
	}
}

// serve runs one request through the full router.
func serve(t *testing.T, h *Handler, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func sessionCookie() *http.Cookie {
	return &http.Cookie{Name: sessionCookieName, Value: "good"}
}
