package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmosk/space-reservation-service/internal/availability"
	"github.com/kmosk/space-reservation-service/internal/domain"
	reservationRepo "github.com/kmosk/space-reservation-service/internal/infra/storage/reservation"
	spaceRepo "github.com/kmosk/space-reservation-service/internal/infra/storage/space"
)

type fakeReservationRepo struct {
	createErr error
	created   *domain.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *r
	out.ID = 42
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	f.created = &out
	return &out, nil
}

type fakeSpaceRepo struct {
	missing bool
}

func (f *fakeSpaceRepo) GetByID(_ context.Context, id int64) (*domain.Space, error) {
	if f.missing {
		return nil, spaceRepo.ErrSpaceNotFound
	}
	return &domain.Space{ID: id, Name: "Переговорная"}, nil
}

type fakeEngine struct {
	decision  *availability.Decision
	err       error
	gotSpace  int64
	gotStart  time.Time
	gotEnd    time.Time
	gotExcl   *int64
	wasCalled bool
}

func (f *fakeEngine) CheckAvailability(_ context.Context, spaceID int64, start, end time.Time, excludeID *int64) (*availability.Decision, error) {
	f.wasCalled = true
	f.gotSpace = spaceID
	f.gotStart = start
	f.gotEnd = end
	f.gotExcl = excludeID
	return f.decision, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC)

func newTestUseCase(repo *fakeReservationRepo, spaces *fakeSpaceRepo, engine *fakeEngine) *UseCase {
	uc := NewUseCase(repo, spaces, engine, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:   1,
		RoleID:   domain.RoleClient,
		SpaceID:  10,
		StartsAt: testNow.Add(2 * time.Hour),
		EndsAt:   testNow.Add(3 * time.Hour),
		Type:     domain.TypeClient,
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeReservationRepo{}
	engine := &fakeEngine{decision: &availability.Decision{Available: true}}
	uc := newTestUseCase(repo, &fakeSpaceRepo{}, engine)

	req := validRequest()
	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, req.UserID, resp.UserID)
	assert.Equal(t, req.SpaceID, resp.SpaceID)
	assert.Equal(t, req.StartsAt, resp.StartsAt)
	assert.Equal(t, req.EndsAt, resp.EndsAt)
	assert.Equal(t, domain.TypeClient, resp.Type)

	// новое бронирование никого не исключает из проверки пересечений
	require.True(t, engine.wasCalled)
	assert.Nil(t, engine.gotExcl)
	assert.Equal(t, req.SpaceID, engine.gotSpace)
}

func TestExecute_SpaceNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeSpaceRepo{missing: true}, &fakeEngine{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSpaceNotFound)
}

func TestExecute_NotAvailable(t *testing.T) {
	repo := &fakeReservationRepo{}
	engine := &fakeEngine{decision: &availability.Decision{
		Available: false,
		Message:   availability.MsgOutsideOperatingHours,
		Category:  availability.CategoryUnprocessable,
	}}
	uc := newTestUseCase(repo, &fakeSpaceRepo{}, engine)

	_, err := uc.Execute(context.Background(), validRequest())

	var notAvailable *NotAvailableError
	require.ErrorAs(t, err, &notAvailable)
	assert.Equal(t, availability.MsgOutsideOperatingHours, notAvailable.Decision.Message)
	assert.Equal(t, availability.CategoryUnprocessable, notAvailable.Decision.Category)
	assert.Nil(t, repo.created)
}

func TestExecute_ConcurrentOverlapMapsToConflict(t *testing.T) {
	// движок пропустил, но exclusion constraint поймал гонку при вставке
	repo := &fakeReservationRepo{createErr: reservationRepo.ErrOverlapConflict}
	engine := &fakeEngine{decision: &availability.Decision{Available: true}}
	uc := newTestUseCase(repo, &fakeSpaceRepo{}, engine)

	_, err := uc.Execute(context.Background(), validRequest())

	var notAvailable *NotAvailableError
	require.ErrorAs(t, err, &notAvailable)
	assert.Equal(t, availability.MsgAlreadyBooked, notAvailable.Decision.Message)
	assert.Equal(t, availability.CategoryConflict, notAvailable.Decision.Category)
}

func TestExecute_CreateFailure(t *testing.T) {
	repo := &fakeReservationRepo{createErr: errors.New("connection reset")}
	engine := &fakeEngine{decision: &availability.Decision{Available: true}}
	uc := newTestUseCase(repo, &fakeSpaceRepo{}, engine)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"start in the past", func(req *Request) {
			req.StartsAt = testNow.Add(-time.Hour)
			req.EndsAt = testNow.Add(time.Hour)
		}},
		{"end before start", func(req *Request) {
			req.EndsAt = req.StartsAt.Add(-time.Minute)
		}},
		{"end equals start", func(req *Request) {
			req.EndsAt = req.StartsAt
		}},
		{"unknown type", func(req *Request) {
			req.Type = domain.ReservationType("vip")
		}},
		{"missing space", func(req *Request) {
			req.SpaceID = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &fakeEngine{decision: &availability.Decision{Available: true}}
			uc := newTestUseCase(&fakeReservationRepo{}, &fakeSpaceRepo{}, engine)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.False(t, engine.wasCalled)
		})
	}
}

func TestExecute_BlockRequiresAdmin(t *testing.T) {
	engine := &fakeEngine{decision: &availability.Decision{Available: true}}
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeSpaceRepo{}, engine)

	req := validRequest()
	req.Type = domain.TypeBlock

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrForbidden)

	req.RoleID = domain.RoleAdmin
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.TypeBlock, resp.Type)
}
