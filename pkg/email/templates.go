package email

import (
	"fmt"
	"strings"
)

// BookingEmailData contains the data needed for booking email templates.
type BookingEmailData struct {
	PatientName string
	Email       string
	ClinicName  string
	DoctorName  string
	TokenNumber string
	Date        string // "5 March 2025"
	SlotTime    string // "09:15 AM"
	AppName     string
}

// BuildBookingConfirmationEmail creates the confirmation sent after a booking
// is committed.
func BuildBookingConfirmationEmail(data BookingEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Nivaran"
	}

	name := data.PatientName
	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("Your token %s for %s", data.TokenNumber, data.Date)

	textBody := fmt.Sprintf(`Hi %s,

Your visit with %s at %s is booked.

Token: %s
Date:  %s
Time:  %s

Please arrive before your slot time and confirm at the reception desk.
If the doctor is running late your queue updates will reflect it live.

Thanks,
The %s Team`,
		name, data.DoctorName, data.ClinicName, data.TokenNumber, data.Date, data.SlotTime, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Your visit with <strong>%s</strong> at %s is booked.</p>
    <p style="background-color: #f3f4f6; padding: 15px; border-radius: 6px; font-size: 18px; text-align: center;">
        Token <strong>%s</strong> &middot; %s &middot; %s
    </p>
    <p>Please arrive before your slot time and confirm at the reception desk.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, data.DoctorName, data.ClinicName, data.TokenNumber, data.Date, data.SlotTime, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// ScheduleSummaryData feeds the end-of-day summary sent to clinic staff.
type ScheduleSummaryData struct {
	Email      string
	ClinicName string
	DoctorName string
	Date       string
	Booked     int
	Completed  int
	Skipped    int
	NoShows    int
	Cancelled  int
	AppName    string
}

// BuildScheduleSummaryEmail creates the daily queue summary for clinic staff.
func BuildScheduleSummaryEmail(data ScheduleSummaryData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Nivaran"
	}

	subject := fmt.Sprintf("%s — queue summary for %s", data.DoctorName, data.Date)

	var b strings.Builder
	fmt.Fprintf(&b, "Queue summary for %s (%s), %s\n\n", data.DoctorName, data.ClinicName, data.Date)
	fmt.Fprintf(&b, "Booked:    %d\n", data.Booked)
	fmt.Fprintf(&b, "Completed: %d\n", data.Completed)
	fmt.Fprintf(&b, "Skipped:   %d\n", data.Skipped)
	fmt.Fprintf(&b, "No-shows:  %d\n", data.NoShows)
	fmt.Fprintf(&b, "Cancelled: %d\n", data.Cancelled)
	fmt.Fprintf(&b, "\n— %s", appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: b.String(),
	}
}
