package booking

// IntakeInput is the raw public booking form payload.
type IntakeInput struct {
	Service             string `json:"service"`
	Stylist             string `json:"stylist"`
	DateTimePreference  string `json:"dateTimePreference"`
	Name                string `json:"name"`
	Phone               string `json:"phone"`
	Email               string `json:"email"`
	Notes               string `json:"notes"`
	WaitlistOptIn       bool   `json:"waitlistOptIn"`
	SalonSlug           string `json:"salonSlug"`
	SubmittedByProvider bool   `json:"submittedByProvider"`
	ProviderID          string `json:"providerId"`
	ProviderName        string `json:"providerName"`
}

// ValidateIntake checks the shape of an intake payload. Pure function of
// the payload; it must run before any side effect.
func ValidateIntake(in IntakeInput) error {
	if in.Service == "" || in.DateTimePreference == "" || in.Name == "" || in.SalonSlug == "" {
		return ErrMissingFields
	}
	// Staff-filed requests come in without the walk-in's contact details.
	if !in.SubmittedByProvider && (in.Email == "" || in.Phone == "") {
		return ErrMissingContactFields
	}
	return nil
}
