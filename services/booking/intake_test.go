package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	salonRepo "salonflow/database/repository/salon"
	"salonflow/models"
	"salonflow/services/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDirectory struct {
	salons map[string]*models.Salon
	err    error
	calls  int
}

func (f *fakeDirectory) GetBySlug(_ context.Context, slug string) (*models.Salon, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.salons[slug]
	if !ok {
		return nil, salonRepo.ErrNotFound
	}
	return s, nil
}

func (f *fakeDirectory) GetByID(_ context.Context, id string) (*models.Salon, error) {
	for _, s := range f.salons {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, salonRepo.ErrNotFound
}

func (f *fakeDirectory) InvalidateSlug(context.Context, string) {}

type fakeBookingRepo struct {
	created []*models.BookingRequest
	err     error
}

func (f *fakeBookingRepo) Create(_ context.Context, req *models.BookingRequest) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, req)
	return "req-1", nil
}

func (f *fakeBookingRepo) GetByID(context.Context, string) (*models.BookingRequest, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBookingRepo) GetBySalonID(context.Context, string, string) ([]models.BookingRequest, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBookingRepo) UpdateStatus(context.Context, string, string) error {
	return errors.New("not implemented")
}

type fakeTracker struct {
	calls int
	err   error
}

func (f *fakeTracker) Record(_ context.Context, _, _, _, _ string) (string, error) {
	f.calls++
	return "usage-1", f.err
}

type fakeDispatcher struct {
	calls    int
	salon    *models.Salon
	req      *models.BookingRequest
	outcomes []notification.SendOutcome
}

func (f *fakeDispatcher) DispatchBookingAlerts(_ context.Context, salon *models.Salon, req *models.BookingRequest) []notification.SendOutcome {
	f.calls++
	f.salon = salon
	f.req = req
	return f.outcomes
}

type fakeScheduler struct {
	calls  int
	fireAt time.Time
	err    error
}

func (f *fakeScheduler) ScheduleWaitlistFollowUp(_, _ string, fireAt time.Time) error {
	f.calls++
	f.fireAt = fireAt
	return f.err
}

func testSalon() *models.Salon {
	return &models.Salon{
		ID:   "salon-1",
		Slug: "shear-genius",
		Name: "Shear Genius",
	}
}

func newIntakeService() (*DefaultIntakeService, *fakeDirectory, *fakeBookingRepo, *fakeTracker, *fakeDispatcher, *fakeScheduler) {
	dir := &fakeDirectory{salons: map[string]*models.Salon{"shear-genius": testSalon()}}
	repo := &fakeBookingRepo{}
	tracker := &fakeTracker{}
	dispatcher := &fakeDispatcher{}
	scheduler := &fakeScheduler{}
	svc := &DefaultIntakeService{
		Directory:  dir,
		Requests:   repo,
		Usage:      tracker,
		Dispatcher: dispatcher,
		Waitlist:   scheduler,
		Logger:     zap.NewNop(),
	}
	return svc, dir, repo, tracker, dispatcher, scheduler
}

func TestSubmitRequestHappyPath(t *testing.T) {
	svc, _, repo, tracker, dispatcher, _ := newIntakeService()

	id, err := svc.SubmitRequest(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "req-1", id)

	require.Len(t, repo.created, 1)
	created := repo.created[0]
	assert.Equal(t, "salon-1", created.SalonID)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, models.NoStylistPreference, created.StylistPreference)

	assert.Equal(t, 1, tracker.calls)
	assert.Equal(t, 1, dispatcher.calls)
	assert.Equal(t, created, dispatcher.req)
}

func TestSubmitRequestValidationFailureTouchesNothing(t *testing.T) {
	svc, dir, repo, tracker, dispatcher, scheduler := newIntakeService()

	in := validInput()
	in.Service = ""
	_, err := svc.SubmitRequest(context.Background(), in)
	assert.ErrorIs(t, err, ErrMissingFields)

	assert.Zero(t, dir.calls)
	assert.Empty(t, repo.created)
	assert.Zero(t, tracker.calls)
	assert.Zero(t, dispatcher.calls)
	assert.Zero(t, scheduler.calls)
}

func TestSubmitRequestUnknownSlugFailsBeforePersistence(t *testing.T) {
	svc, _, repo, tracker, dispatcher, _ := newIntakeService()

	in := validInput()
	in.SalonSlug = "ghost-salon"
	_, err := svc.SubmitRequest(context.Background(), in)
	assert.ErrorIs(t, err, ErrSalonNotFound)

	assert.Empty(t, repo.created)
	assert.Zero(t, tracker.calls)
	assert.Zero(t, dispatcher.calls)
}

func TestSubmitRequestDirectoryInfraErrorIsNotA404(t *testing.T) {
	svc, dir, _, _, _, _ := newIntakeService()
	dir.err = errors.New("connection reset")

	_, err := svc.SubmitRequest(context.Background(), validInput())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSalonNotFound)
}

func TestSubmitRequestPersistenceFailureIsFatal(t *testing.T) {
	svc, _, repo, tracker, dispatcher, _ := newIntakeService()
	repo.err = errors.New("write timeout")

	_, err := svc.SubmitRequest(context.Background(), validInput())
	require.Error(t, err)
	assert.Zero(t, tracker.calls)
	assert.Zero(t, dispatcher.calls)
}

func TestSubmitRequestMeteringFailureDoesNotAbort(t *testing.T) {
	svc, _, _, tracker, dispatcher, _ := newIntakeService()
	tracker.err = errors.New("usage collection down")

	id, err := svc.SubmitRequest(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "req-1", id)
	assert.Equal(t, 1, dispatcher.calls, "dispatch still runs after metering failure")
}

func TestSubmitRequestWaitlistScheduling(t *testing.T) {
	svc, _, _, _, _, scheduler := newIntakeService()

	in := validInput()
	in.WaitlistOptIn = true
	before := time.Now()
	_, err := svc.SubmitRequest(context.Background(), in)
	require.NoError(t, err)

	require.Equal(t, 1, scheduler.calls)
	assert.WithinDuration(t, before.Add(waitlistFollowUpDelay), scheduler.fireAt, 5*time.Second)
}

func TestSubmitRequestWaitlistFailureDoesNotAbort(t *testing.T) {
	svc, _, _, _, _, scheduler := newIntakeService()
	scheduler.err = errors.New("queue unavailable")

	in := validInput()
	in.WaitlistOptIn = true
	id, err := svc.SubmitRequest(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "req-1", id)
}

func TestSubmitRequestNoWaitlistOptInNoScheduling(t *testing.T) {
	svc, _, _, _, _, scheduler := newIntakeService()

	_, err := svc.SubmitRequest(context.Background(), validInput())
	require.NoError(t, err)
	assert.Zero(t, scheduler.calls)
}

func TestSubmitRequestProviderSubmission(t *testing.T) {
	svc, _, repo, _, _, _ := newIntakeService()

	in := validInput()
	in.Email = ""
	in.Phone = ""
	in.SubmittedByProvider = true
	in.ProviderID = "prov-9"
	in.ProviderName = "Alex"

	_, err := svc.SubmitRequest(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	created := repo.created[0]
	assert.Equal(t, models.StatusProviderRequested, created.Status)
	assert.Equal(t, "prov-9", created.ProviderID)
	assert.Equal(t, "Alex", created.ProviderName)
}

func TestSubmitRequestKeepsExplicitStylist(t *testing.T) {
	svc, _, repo, _, _, _ := newIntakeService()

	in := validInput()
	in.Stylist = "Jordan"
	_, err := svc.SubmitRequest(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "Jordan", repo.created[0].StylistPreference)
}

func TestSubmitRequestNilOptionalCollaborators(t *testing.T) {
	svc, _, _, _, _, _ := newIntakeService()
	svc.Usage = nil
	svc.Dispatcher = nil
	svc.Waitlist = nil

	in := validInput()
	in.WaitlistOptIn = true
	id, err := svc.SubmitRequest(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "req-1", id)
}
