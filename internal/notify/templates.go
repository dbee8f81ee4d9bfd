package notify

import (
	"fmt"

	"github.com/summitit/appointments/internal/appointments"
)

// requestReceivedEmail renders the "we got your booking" message sent to the
// requester right after a new appointment is created.
func requestReceivedEmail(appt *appointments.Appointment, contactEmail string) EmailMessage {
	subject := fmt.Sprintf("New Appointment Request - %s", appt.Name)

	descriptionRow := ""
	descriptionLine := ""
	if appt.Description != "" {
		descriptionRow = fmt.Sprintf("<p><strong>Description:</strong> %s</p>", appt.Description)
		descriptionLine = fmt.Sprintf("\n- Description: %s", appt.Description)
	}

	html := fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: linear-gradient(135deg, #3b82f6, #1d4ed8); padding: 20px; text-align: center;">
    <h1 style="color: white; margin: 0;">Summit IT Services</h1>
    <p style="color: #e0e7ff; margin: 5px 0;">Mobile IT Services</p>
  </div>
  <div style="padding: 30px; background: #f8fafc;">
    <h2 style="color: #1e40af;">Thank you for your appointment request!</h2>
    <p>Hi %s,</p>
    <p>We've received your appointment request and will contact you soon to confirm the details.</p>
    <div style="background: white; padding: 20px; border-radius: 8px; border-left: 4px solid #3b82f6;">
      <h3 style="margin-top: 0; color: #1e40af;">Appointment Details:</h3>
      <p><strong>Service:</strong> %s</p>
      <p><strong>Preferred Date:</strong> %s</p>
      <p><strong>Preferred Time:</strong> %s</p>
      <p><strong>Location:</strong> %s</p>
      %s
    </div>
    <p>We'll be in touch within 24 hours to confirm your appointment time.</p>
    <p>If you have any urgent questions, please contact us at <a href="mailto:%s">%s</a></p>
    <p>Best regards,<br>Summit IT Services Team</p>
  </div>
</body>
</html>`,
		appt.Name, appt.ServiceType, appt.PreferredDate, appt.PreferredTime,
		appt.Location, descriptionRow, contactEmail, contactEmail)

	text := fmt.Sprintf(`Summit IT Services - Appointment Request Confirmation

Hi %s,

Thank you for your appointment request! We've received your request and will contact you soon to confirm the details.

Appointment Details:
- Service: %s
- Preferred Date: %s
- Preferred Time: %s
- Location: %s%s

We'll be in touch within 24 hours to confirm your appointment time.

Best regards,
Summit IT Services Team
%s`,
		appt.Name, appt.ServiceType, appt.PreferredDate, appt.PreferredTime,
		appt.Location, descriptionLine, contactEmail)

	return EmailMessage{
		To:      appt.Email,
		ToName:  appt.Name,
		Subject: subject,
		Body:    text,
		HTML:    html,
	}
}

// confirmationEmail renders the message sent when an administrator confirms
// an appointment. Confirmed date/time fall back to the requester's preferred
// values when the admin left them unset.
func confirmationEmail(appt *appointments.Appointment, contactEmail string) EmailMessage {
	date := appt.DisplayDate()
	timeOfDay := appt.DisplayTime()
	subject := fmt.Sprintf("Appointment Confirmed - %s", date)

	notesRow := ""
	notesLine := ""
	if appt.AdminNotes != "" {
		notesRow = fmt.Sprintf("<p><strong>Notes:</strong> %s</p>", appt.AdminNotes)
		notesLine = fmt.Sprintf("\n- Notes: %s", appt.AdminNotes)
	}

	html := fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: linear-gradient(135deg, #10b981, #059669); padding: 20px; text-align: center;">
    <h1 style="color: white; margin: 0;">Appointment Confirmed!</h1>
    <p style="color: #d1fae5; margin: 5px 0;">Summit IT Services</p>
  </div>
  <div style="padding: 30px; background: #f0fdf4;">
    <p>Hi %s,</p>
    <p>Great news! Your appointment has been confirmed. We'll be there to help with your IT needs.</p>
    <div style="background: white; padding: 20px; border-radius: 8px; border-left: 4px solid #10b981;">
      <h3 style="margin-top: 0; color: #065f46;">Confirmed Appointment Details:</h3>
      <p><strong>Service:</strong> %s</p>
      <p><strong>Date:</strong> %s</p>
      <p><strong>Time:</strong> %s</p>
      <p><strong>Location:</strong> %s</p>
      %s
    </div>
    <p>If you need to reschedule or have any questions, please contact us at <a href="mailto:%s">%s</a></p>
    <p>We look forward to serving you!</p>
    <p>Best regards,<br>Summit IT Services Team</p>
  </div>
</body>
</html>`,
		appt.Name, appt.ServiceType, date, timeOfDay, appt.Location,
		notesRow, contactEmail, contactEmail)

	text := fmt.Sprintf(`Summit IT Services - Appointment Confirmed!

Hi %s,

Great news! Your appointment has been confirmed.

Confirmed Appointment Details:
- Service: %s
- Date: %s
- Time: %s
- Location: %s%s

If you need to reschedule, please contact us at %s

We look forward to serving you!

Best regards,
Summit IT Services Team`,
		appt.Name, appt.ServiceType, date, timeOfDay, appt.Location,
		notesLine, contactEmail)

	return EmailMessage{
		To:      appt.Email,
		ToName:  appt.Name,
		Subject: subject,
		Body:    text,
		HTML:    html,
	}
}
