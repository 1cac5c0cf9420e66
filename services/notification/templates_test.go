package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSMSBookingAlert(t *testing.T) {
	msg := smsBookingAlert(notifySalon(), alertRequest())
	assert.Contains(t, msg, "Shear Genius")
	assert.Contains(t, msg, "Dana Client")
	assert.Contains(t, msg, "Haircut")
	assert.Contains(t, msg, "Friday afternoon")
}

func TestEmailBookingAlertTextOmitsEmptyFields(t *testing.T) {
	req := alertRequest()
	req.Notes = ""
	req.Phone = ""

	body := emailBookingAlertText(req, "https://app.example.com/dashboard/requests")
	assert.NotContains(t, body, "Notes:")
	assert.NotContains(t, body, "Phone:")
	assert.Contains(t, body, "Email: dana@example.com")
	assert.Contains(t, body, "https://app.example.com/dashboard/requests")
}

func TestEmailBookingAlertTextIncludesNotes(t *testing.T) {
	req := alertRequest()
	req.Notes = "Allergic to certain dyes"
	body := emailBookingAlertText(req, "https://app.example.com/dashboard/requests")
	assert.Contains(t, body, "Notes: Allergic to certain dyes")
}

func TestEmailBookingAlertHTMLEscapes(t *testing.T) {
	req := alertRequest()
	req.Name = `<script>alert("x")</script>`
	body := emailBookingAlertHTML(req, "https://app.example.com/dashboard/requests")
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}
