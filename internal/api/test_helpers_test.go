package api

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pulsecheck-app/pulsecheck-api/internal/api/shared"
	"github.com/pulsecheck-app/pulsecheck-api/internal/domain"
	"github.com/pulsecheck-app/pulsecheck-api/internal/domain/wellness"
	"github.com/pulsecheck-app/pulsecheck-api/internal/store"
)

// withAuthenticatedUser injects the user's ID and role into the request
// context the way the auth middleware would.
func withAuthenticatedUser(r *http.Request, userID uuid.UUID, role domain.Role) *http.Request {
	ctx := context.WithValue(r.Context(), shared.UserIDContextKey, userID)
	ctx = context.WithValue(ctx, shared.UserRoleContextKey, role)
	return r.WithContext(ctx)
}

// mockUserStore is a function-field mock of store.UserStore.
type mockUserStore struct {
	createFn     func(ctx context.Context, user *domain.User) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
}

func (m *mockUserStore) Create(ctx context.Context, user *domain.User) error {
	return m.createFn(ctx, user)
}

func (m *mockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.getByEmailFn(ctx, email)
}

func (m *mockUserStore) WithTx(tx *sql.Tx) store.UserStore { return m }

// mockAssessmentStore is a function-field mock of store.AssessmentStore.
type mockAssessmentStore struct {
	createFn          func(ctx context.Context, a *domain.Assessment) error
	getByIDFn         func(ctx context.Context, id uuid.UUID) (*domain.Assessment, error)
	listByUserSinceFn func(ctx context.Context, userID uuid.UUID, since, until time.Time) ([]domain.Assessment, error)
	listByMonthFn     func(ctx context.Context, year, month int) ([]domain.Assessment, error)
}

func (m *mockAssessmentStore) Create(ctx context.Context, a *domain.Assessment) error {
	return m.createFn(ctx, a)
}

func (m *mockAssessmentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Assessment, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockAssessmentStore) ListByUserSince(
	ctx context.Context,
	userID uuid.UUID,
	since, until time.Time,
) ([]domain.Assessment, error) {
	return m.listByUserSinceFn(ctx, userID, since, until)
}

func (m *mockAssessmentStore) ListByMonth(
	ctx context.Context,
	year, month int,
) ([]domain.Assessment, error) {
	return m.listByMonthFn(ctx, year, month)
}

func (m *mockAssessmentStore) WithTx(tx *sql.Tx) store.AssessmentStore { return m }

// mockRecommendationService is a function-field mock of
// service.RecommendationService.
type mockRecommendationService struct {
	recommendationsFn func(ctx context.Context, userID uuid.UUID) ([]wellness.Recommendation, error)
}

func (m *mockRecommendationService) RecommendationsForUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]wellness.Recommendation, error) {
	return m.recommendationsFn(ctx, userID)
}

// mockReportService is a function-field mock of service.ReportService.
type mockReportService struct {
	monthlyReportFn func(ctx context.Context, year, month int) (*wellness.MonthlyReport, error)
}

func (m *mockReportService) MonthlyReport(
	ctx context.Context,
	year, month int,
) (*wellness.MonthlyReport, error) {
	return m.monthlyReportFn(ctx, year, month)
}
