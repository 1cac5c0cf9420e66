package notification

import (
	"context"
	"errors"
	"testing"

	providerRepo "salonflow/database/repository/provider"
	teamRepo "salonflow/database/repository/team"
	"salonflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSMSSender struct {
	sent    []string // destination phone numbers, in order
	failFor map[string]error
}

func (f *fakeSMSSender) Send(_ context.Context, toPhone, _ string) error {
	f.sent = append(f.sent, toPhone)
	if f.failFor != nil {
		return f.failFor[toPhone]
	}
	return nil
}

type fakeMailer struct {
	sent    []string
	failFor map[string]error
}

func (f *fakeMailer) Send(_ context.Context, toAddress, _, _, _ string) error {
	f.sent = append(f.sent, toAddress)
	if f.failFor != nil {
		return f.failFor[toAddress]
	}
	return nil
}

type fakeProviderRepo struct {
	providers []models.Provider
	err       error
}

func (f *fakeProviderRepo) GetByID(_ context.Context, id string) (*models.Provider, error) {
	for i := range f.providers {
		if f.providers[i].ID == id {
			return &f.providers[i], nil
		}
	}
	return nil, providerRepo.ErrNotFound
}

func (f *fakeProviderRepo) GetBySalonID(context.Context, string) ([]models.Provider, error) {
	return f.providers, f.err
}

func (f *fakeProviderRepo) Create(context.Context, *models.Provider) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeProviderRepo) Update(context.Context, *models.Provider) error {
	return errors.New("not implemented")
}

func (f *fakeProviderRepo) Delete(context.Context, string) error {
	return errors.New("not implemented")
}

type fakeTeamRepo struct {
	members map[string]*models.TeamMember
	err     error
}

func (f *fakeTeamRepo) GetByID(_ context.Context, id string) (*models.TeamMember, error) {
	if f.err != nil {
		return nil, f.err
	}
	m, ok := f.members[id]
	if !ok {
		return nil, teamRepo.ErrNotFound
	}
	return m, nil
}

func (f *fakeTeamRepo) GetBySalonID(context.Context, string) ([]models.TeamMember, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTeamRepo) Create(context.Context, *models.TeamMember) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeTeamRepo) Update(context.Context, *models.TeamMember) error {
	return errors.New("not implemented")
}

func (f *fakeTeamRepo) Delete(context.Context, string) error {
	return errors.New("not implemented")
}

func notifySalon() *models.Salon {
	return &models.Salon{
		ID:   "salon-1",
		Slug: "shear-genius",
		Name: "Shear Genius",
		NotificationSettings: models.NotificationSettings{
			Enabled: true,
			SMSRecipients: []models.SMSRecipient{
				{Phone: "5550000001", Label: "Front desk", Enabled: true},
				{Phone: "5550000002", Label: "Owner", Enabled: true},
			},
			EmailRecipients: []models.EmailRecipient{
				{Email: "desk@sheargenius.com", Enabled: true},
				{Email: "owner@sheargenius.com", Enabled: true},
			},
		},
	}
}

func alertRequest() *models.BookingRequest {
	return &models.BookingRequest{
		ID:                 "req-1",
		SalonID:            "salon-1",
		Name:               "Dana Client",
		Email:              "dana@example.com",
		Phone:              "5551234567",
		Service:            "Haircut",
		StylistPreference:  models.NoStylistPreference,
		DateTimePreference: "Friday afternoon",
	}
}

func newDispatcher() (*DefaultDispatcher, *fakeSMSSender, *fakeMailer, *fakeProviderRepo, *fakeTeamRepo) {
	smsSender := &fakeSMSSender{}
	mailer := &fakeMailer{}
	providers := &fakeProviderRepo{}
	team := &fakeTeamRepo{members: map[string]*models.TeamMember{}}
	d := &DefaultDispatcher{
		Providers:        providers,
		Team:             team,
		SMS:              smsSender,
		Mailer:           mailer,
		DashboardBaseURL: "https://app.example.com",
		Logger:           zap.NewNop(),
	}
	return d, smsSender, mailer, providers, team
}

func TestDispatchFansOutToEnabledRecipients(t *testing.T) {
	d, smsSender, mailer, _, _ := newDispatcher()

	outcomes := d.DispatchBookingAlerts(context.Background(), notifySalon(), alertRequest())

	assert.Equal(t, []string{"+15550000001", "+15550000002"}, smsSender.sent)
	assert.Equal(t, []string{"desk@sheargenius.com", "owner@sheargenius.com"}, mailer.sent)
	require.Len(t, outcomes, 4)
	for _, o := range outcomes {
		assert.True(t, o.OK(), "unexpected failure for %s/%s", o.Channel, o.Recipient)
	}
}

func TestDispatchFailingRecipientDoesNotBlockRest(t *testing.T) {
	d, smsSender, mailer, _, _ := newDispatcher()
	smsSender.failFor = map[string]error{"+15550000001": errors.New("undeliverable")}

	outcomes := d.DispatchBookingAlerts(context.Background(), notifySalon(), alertRequest())

	// Both SMS attempts happen, and the email stage still runs in full.
	assert.Len(t, smsSender.sent, 2)
	assert.Len(t, mailer.sent, 2)

	failed := 0
	for _, o := range outcomes {
		if !o.OK() {
			failed++
			assert.Equal(t, ChannelSMS, o.Channel)
			assert.Equal(t, "+15550000001", o.Recipient)
		}
	}
	assert.Equal(t, 1, failed)
}

func TestDispatchUnformattablePhoneIsIsolated(t *testing.T) {
	d, smsSender, _, _, _ := newDispatcher()
	salon := notifySalon()
	salon.NotificationSettings.SMSRecipients[0].Phone = "not a number"

	outcomes := d.DispatchBookingAlerts(context.Background(), salon, alertRequest())

	// The bad entry never reaches the gateway; the good one does.
	assert.Equal(t, []string{"+15550000002"}, smsSender.sent)
	failed := 0
	for _, o := range outcomes {
		if !o.OK() {
			failed++
		}
	}
	assert.Equal(t, 1, failed)
}

func TestDispatchSkipsDisabledRecipients(t *testing.T) {
	d, smsSender, mailer, _, _ := newDispatcher()
	salon := notifySalon()
	salon.NotificationSettings.SMSRecipients[1].Enabled = false
	salon.NotificationSettings.EmailRecipients[0].Enabled = false

	d.DispatchBookingAlerts(context.Background(), salon, alertRequest())

	assert.Equal(t, []string{"+15550000001"}, smsSender.sent)
	assert.Equal(t, []string{"owner@sheargenius.com"}, mailer.sent)
}

func TestDispatchMasterSwitchOff(t *testing.T) {
	d, smsSender, mailer, _, _ := newDispatcher()
	salon := notifySalon()
	salon.NotificationSettings.Enabled = false

	outcomes := d.DispatchBookingAlerts(context.Background(), salon, alertRequest())

	assert.Empty(t, smsSender.sent)
	assert.Empty(t, mailer.sent)
	assert.Empty(t, outcomes)
}

func TestDispatchEmptyRostersAreFine(t *testing.T) {
	d, smsSender, mailer, _, _ := newDispatcher()
	salon := notifySalon()
	salon.NotificationSettings.SMSRecipients = nil
	salon.NotificationSettings.EmailRecipients = nil

	outcomes := d.DispatchBookingAlerts(context.Background(), salon, alertRequest())

	assert.Empty(t, smsSender.sent)
	assert.Empty(t, mailer.sent)
	assert.Empty(t, outcomes)
}

func TestDispatchProviderStageSkippedForDefaultPreference(t *testing.T) {
	d, _, _, providers, _ := newDispatcher()
	providers.providers = []models.Provider{{
		ID: "prov-1", SalonID: "salon-1", Name: "Jordan",
		IsTeamMember: true, TeamMemberID: "tm-1", ReceiveNotifications: true,
	}}

	outcomes := d.DispatchBookingAlerts(context.Background(), notifySalon(), alertRequest())
	for _, o := range outcomes {
		assert.NotEqual(t, ChannelProviderSMS, o.Channel)
	}
}

func TestDispatchNotifiesPreferredProvider(t *testing.T) {
	d, smsSender, _, providers, team := newDispatcher()
	providers.providers = []models.Provider{{
		ID: "prov-1", SalonID: "salon-1", Name: "Jordan",
		IsTeamMember: true, TeamMemberID: "tm-1", ReceiveNotifications: true,
	}}
	team.members["tm-1"] = &models.TeamMember{ID: "tm-1", Name: "Jordan", Phone: "5559990000"}

	req := alertRequest()
	req.StylistPreference = "Jordan"
	outcomes := d.DispatchBookingAlerts(context.Background(), notifySalon(), req)

	assert.Contains(t, smsSender.sent, "+15559990000")
	var providerOutcomes []SendOutcome
	for _, o := range outcomes {
		if o.Channel == ChannelProviderSMS {
			providerOutcomes = append(providerOutcomes, o)
		}
	}
	require.Len(t, providerOutcomes, 1)
	assert.True(t, providerOutcomes[0].OK())
	assert.Equal(t, "+15559990000", providerOutcomes[0].Recipient)
}

// The provider stage runs even when the salon's roster notifications
// are switched off; it is gated by the provider's own flags.
func TestDispatchProviderStageIndependentOfMasterSwitch(t *testing.T) {
	d, smsSender, _, providers, team := newDispatcher()
	providers.providers = []models.Provider{{
		ID: "prov-1", SalonID: "salon-1", Name: "Jordan",
		IsTeamMember: true, TeamMemberID: "tm-1", ReceiveNotifications: true,
	}}
	team.members["tm-1"] = &models.TeamMember{ID: "tm-1", Name: "Jordan", Phone: "5559990000"}

	salon := notifySalon()
	salon.NotificationSettings.Enabled = false
	req := alertRequest()
	req.StylistPreference = "Jordan"

	outcomes := d.DispatchBookingAlerts(context.Background(), salon, req)
	require.Len(t, outcomes, 1)
	assert.Equal(t, ChannelProviderSMS, outcomes[0].Channel)
	assert.Equal(t, []string{"+15559990000"}, smsSender.sent)
}

func TestDispatchProviderOptedOut(t *testing.T) {
	d, smsSender, _, providers, _ := newDispatcher()
	providers.providers = []models.Provider{{
		ID: "prov-1", SalonID: "salon-1", Name: "Jordan",
		IsTeamMember: true, TeamMemberID: "tm-1", ReceiveNotifications: false,
	}}

	req := alertRequest()
	req.StylistPreference = "Jordan"
	outcomes := d.DispatchBookingAlerts(context.Background(), notifySalon(), req)

	for _, o := range outcomes {
		assert.NotEqual(t, ChannelProviderSMS, o.Channel)
	}
	assert.NotContains(t, smsSender.sent, "+15559990000")
}

func TestDispatchUnmatchedPreferenceIsSilent(t *testing.T) {
	d, _, _, providers, _ := newDispatcher()
	providers.providers = []models.Provider{{ID: "prov-1", Name: "Jordan"}}

	req := alertRequest()
	req.StylistPreference = "Somebody Else"
	outcomes := d.DispatchBookingAlerts(context.Background(), notifySalon(), req)
	for _, o := range outcomes {
		assert.NotEqual(t, ChannelProviderSMS, o.Channel)
	}
}

func TestDispatchProviderNameMatchIsExact(t *testing.T) {
	d, smsSender, _, providers, team := newDispatcher()
	providers.providers = []models.Provider{{
		ID: "prov-1", SalonID: "salon-1", Name: "Jordan",
		IsTeamMember: true, TeamMemberID: "tm-1", ReceiveNotifications: true,
	}}
	team.members["tm-1"] = &models.TeamMember{ID: "tm-1", Phone: "5559990000"}

	req := alertRequest()
	req.StylistPreference = "jordan" // case differs
	d.DispatchBookingAlerts(context.Background(), notifySalon(), req)
	assert.NotContains(t, smsSender.sent, "+15559990000")
}

func TestDispatchProviderMissingTeamMemberIsOneFailure(t *testing.T) {
	d, _, _, providers, _ := newDispatcher()
	providers.providers = []models.Provider{{
		ID: "prov-1", SalonID: "salon-1", Name: "Jordan",
		IsTeamMember: true, TeamMemberID: "tm-missing", ReceiveNotifications: true,
	}}

	salon := notifySalon()
	salon.NotificationSettings.Enabled = false
	req := alertRequest()
	req.StylistPreference = "Jordan"

	outcomes := d.DispatchBookingAlerts(context.Background(), salon, req)
	require.Len(t, outcomes, 1)
	assert.Equal(t, ChannelProviderSMS, outcomes[0].Channel)
	assert.False(t, outcomes[0].OK())
}

func TestDispatchProviderMissingPhoneIsOneFailure(t *testing.T) {
	d, smsSender, _, providers, team := newDispatcher()
	providers.providers = []models.Provider{{
		ID: "prov-1", SalonID: "salon-1", Name: "Jordan",
		IsTeamMember: true, TeamMemberID: "tm-1", ReceiveNotifications: true,
	}}
	team.members["tm-1"] = &models.TeamMember{ID: "tm-1", Name: "Jordan"}

	salon := notifySalon()
	salon.NotificationSettings.Enabled = false
	req := alertRequest()
	req.StylistPreference = "Jordan"

	outcomes := d.DispatchBookingAlerts(context.Background(), salon, req)
	require.Len(t, outcomes, 1)
	assert.False(t, outcomes[0].OK())
	assert.Empty(t, smsSender.sent)
}
