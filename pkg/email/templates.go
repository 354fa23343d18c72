package email

import (
	"fmt"
)

// CheckupEmailData contains the data needed for checkup notification emails.
type CheckupEmailData struct {
	Recipient    string
	PatientName  string
	CheckupTitle string
	ClinicTitle  string
	ResultURL    string
	AppName      string
}

// BuildCheckupCompletedEmail creates the notification sent to a checkup
// template's approvers when a patient finishes a session.
func BuildCheckupCompletedEmail(data CheckupEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Pezeshkyar"
	}

	patientName := data.PatientName
	if patientName == "" {
		patientName = "A patient"
	}

	subject := fmt.Sprintf("Checkup completed: %s", data.CheckupTitle)

	textBody := fmt.Sprintf(`Hello,

%s has completed the checkup "%s" at %s.

You can review the aggregated result here:
%s

Thanks,
The %s Team`,
		patientName, data.CheckupTitle, data.ClinicTitle, data.ResultURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Checkup completed</h2>
    <p><strong>%s</strong> has completed the checkup <strong>%s</strong> at %s.</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Review Result</a>
    </p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		patientName, data.CheckupTitle, data.ClinicTitle, data.ResultURL, appName)

	return Message{
		To:       []string{data.Recipient},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildIdentityApprovedEmail confirms that national identity verification
// succeeded for the user's account.
func BuildIdentityApprovedEmail(email, firstName, language string) Message {
	const appName = "Pezeshkyar"

	name := firstName
	if name == "" {
		name = "there"
	}

	var subject, greeting, line1, line2, closing string

	if language == "fa" {
		subject = "هویت شما تایید شد | Identity Verified"
		greeting = "سلام،"
		line1 = "هویت شما با موفقیت تایید شد."
		line2 = "از این پس می‌توانید چکاپ‌هایی که نیاز به احراز هویت دارند را انجام دهید."
		closing = "تیم پزشکیار"
	} else {
		subject = "Identity Verified | هویت شما تایید شد"
		greeting = fmt.Sprintf("Hi %s,", name)
		line1 = "Your identity has been verified successfully."
		line2 = "You can now run checkups that require identity verification."
		closing = fmt.Sprintf("The %s Team", appName)
	}

	textBody := fmt.Sprintf(`%s

%s

%s

%s`, greeting, line1, line2, closing)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #16a34a;">%s</h2>
    <p>%s</p>
    <p>%s</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px; border-top: 1px solid #e5e7eb; padding-top: 20px;">%s</p>
</body>
</html>`, greeting, line1, line2, closing)

	return Message{
		To:       []string{email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildOTPEmail creates an OTP verification email message.
// language: "en" for English or "fa" for Persian
func BuildOTPEmail(email string, code string, language string, expiryMinutes int) Message {
	const appName = "Pezeshkyar"

	var subject, greeting, line1, line2, line3, codeLabel, expires, closing string

	if language == "fa" {
		subject = "کد تایید شما | Your Verification Code"
		greeting = "سلام،"
		line1 = "درخواست تایید هویت شما برای دسترسی به پزشکیار دریافت شد."
		line2 = "لطفا برای تأیید هویت خود از کد زیر استفاده کنید:"
		line3 = "اگر این درخواست را شما نکردید، لطفا این ایمیل را نادیده بگیرید."
		codeLabel = "کد تایید:"
		expires = fmt.Sprintf("این کد برای %d دقیقه معتبر است.", expiryMinutes)
		closing = "تیم پزشکیار"
	} else {
		subject = "Your Verification Code | کد تایید شما"
		greeting = "Hi,"
		line1 = fmt.Sprintf("You've requested to verify your identity for accessing %s.", appName)
		line2 = "Please use the code below to verify your identity:"
		line3 = "If you didn't request this, please ignore this email."
		codeLabel = "Verification Code:"
		expires = fmt.Sprintf("This code is valid for %d minutes.", expiryMinutes)
		closing = fmt.Sprintf("The %s Team", appName)
	}

	textBody := fmt.Sprintf(`%s

%s

%s

%s

%s

%s

%s

%s`, greeting, line1, line2, codeLabel, code, expires, line3, closing)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">%s</h2>
    <p>%s</p>
    <p>%s</p>
    <p style="text-align: center; margin: 30px 0; background-color: #f3f4f6; padding: 20px; border-radius: 6px;">
        <span style="font-size: 12px; color: #6b7280;">%s</span><br>
        <span style="font-size: 36px; font-weight: bold; font-family: monospace; color: #000; letter-spacing: 4px;">%s</span>
    </p>
    <p style="color: #ef4444; font-size: 14px; text-align: center;">%s</p>
    <p>%s</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px; border-top: 1px solid #e5e7eb; padding-top: 20px;">
        %s
    </p>
</body>
</html>`, greeting, line1, line2, codeLabel, code, expires, line3, closing)

	return Message{
		To:       []string{email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
