package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssessment(t *testing.T) {
	t.Parallel()
	userID := uuid.New()
	occurredAt := time.Date(2025, 3, 10, 9, 30, 0, 0, time.FixedZone("BRT", -3*3600))

	a, err := NewAssessment(userID, occurredAt, 3, 4, 2, "dia corrido")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.Equal(t, userID, a.UserID)
	assert.Equal(t, time.UTC, a.OccurredAt.Location())
	assert.Equal(t, 3, a.Mood)
	assert.Equal(t, 4, a.Stress)
	assert.Equal(t, 2, a.Workload)
	assert.Equal(t, "dia corrido", a.Notes)
}

func TestAssessmentValidate(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()

	valid := Assessment{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		OccurredAt: now,
		Mood:       3,
		Stress:     3,
		Workload:   3,
	}

	testCases := []struct {
		name   string
		mutate func(a *Assessment)
		want   error
	}{
		{name: "valid", mutate: func(a *Assessment) {}, want: nil},
		{
			name:   "missing ID",
			mutate: func(a *Assessment) { a.ID = uuid.Nil },
			want:   ErrAssessmentIDEmpty,
		},
		{
			name:   "missing user ID",
			mutate: func(a *Assessment) { a.UserID = uuid.Nil },
			want:   ErrAssessmentUserIDEmpty,
		},
		{
			name:   "zero time",
			mutate: func(a *Assessment) { a.OccurredAt = time.Time{} },
			want:   ErrAssessmentTimeEmpty,
		},
		{
			name:   "mood below range",
			mutate: func(a *Assessment) { a.Mood = 0 },
			want:   ErrOrdinalOutOfRange,
		},
		{
			name:   "stress above range",
			mutate: func(a *Assessment) { a.Stress = 6 },
			want:   ErrOrdinalOutOfRange,
		},
		{
			name:   "workload above range",
			mutate: func(a *Assessment) { a.Workload = 9 },
			want:   ErrOrdinalOutOfRange,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := valid
			tc.mutate(&a)
			err := a.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestNewUser(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		email    string
		password string
		role     Role
		wantErr  error
	}{
		{name: "valid member", email: "ana@example.com", password: "s3nha-segura", role: RoleMember},
		{name: "valid admin", email: "rh@example.com", password: "s3nha-segura", role: RoleAdmin},
		{name: "bad email", email: "not-an-email", password: "s3nha-segura", role: RoleMember, wantErr: ErrInvalidEmail},
		{name: "short password", email: "ana@example.com", password: "curta", role: RoleMember, wantErr: ErrPasswordTooShort},
		{name: "unknown role", email: "ana@example.com", password: "s3nha-segura", role: Role("root"), wantErr: ErrInvalidRole},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			user, err := NewUser(tc.email, tc.password, tc.role)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.role, user.Role)
			assert.Equal(t, tc.role == RoleAdmin, user.IsAdmin())
		})
	}
}
