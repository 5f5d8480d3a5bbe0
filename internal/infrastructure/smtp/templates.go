package smtp

import (
	"html/template"
	"strings"
)

var (
	verificationTmpl = template.Must(template.New("verification").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Verify Your Email</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(to right, #4CAF50, #369d3b); padding: 20px; text-align: center;">
    <h1 style="color: white; margin: 0; letter-spacing: 4px;">Verify Your Email</h1>
  </div>
  <div style="background-color: #f9f9f9; padding: 20px;">
    <p>Hello,</p>
    <p>Thank you for signing up! Your verification code is:</p>
    <div style="text-align: center; margin: 30px 0;">
      <span style="font-size: 32px; font-weight: bold; letter-spacing: 5px; color: #4CAF50;">{{.Code}}</span>
    </div>
    <p>
      Enter this code on the verification page to complete your registration.<br />
      This code will expire in 1 hour for security reasons.<br />
      If you didn't create an account with us, please ignore this email.
    </p>
    <p>Best regards,<br>Your App Team</p>
  </div>
</body>
</html>`))

	welcomeTmpl = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Welcome</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(to right, #4CAF50, #369d3b); padding: 20px; text-align: center;">
    <h1 style="color: white; margin: 0;">Welcome, {{.Name}}!</h1>
  </div>
  <div style="background-color: #f9f9f9; padding: 20px;">
    <p>Your email has been verified and your account is ready to use.</p>
    <p>Best regards,<br>Your App Team</p>
  </div>
</body>
</html>`))

	resetRequestTmpl = template.Must(template.New("reset-request").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Reset Your Password</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(to right, #4CAF50, #369d3b); padding: 20px; text-align: center;">
    <h1 style="color: white; margin: 0;">Password Reset</h1>
  </div>
  <div style="background-color: #f9f9f9; padding: 20px;">
    <p>Hello,</p>
    <p>We received a request to reset your password. Click the button below to proceed:</p>
    <div style="text-align: center; margin: 30px 0;">
      <a href="{{.ResetURL}}" style="background-color: #4CAF50; color: white; padding: 12px 20px; text-decoration: none; border-radius: 5px;">Reset Password</a>
    </div>
    <p>
      This link will expire in 30 minutes for security reasons.<br />
      If you didn't request a password reset, please ignore this email.
    </p>
    <p>Best regards,<br>Your App Team</p>
  </div>
</body>
</html>`))

	resetSuccessTmpl = template.Must(template.New("reset-success").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Password Reset Successful</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(to right, #4CAF50, #369d3b); padding: 20px; text-align: center;">
    <h1 style="color: white; margin: 0;">Password Reset Successful</h1>
  </div>
  <div style="background-color: #f9f9f9; padding: 20px;">
    <p>Hello,</p>
    <p>Your password has been successfully reset. If you did not perform this change, contact support immediately.</p>
    <p>Best regards,<br>Your App Team</p>
  </div>
</body>
</html>`))
)

func renderVerification(code string) (string, error) {
	var b strings.Builder
	err := verificationTmpl.Execute(&b, struct{ Code string }{code})
	return b.String(), err
}

func renderWelcome(name string) (string, error) {
	var b strings.Builder
	err := welcomeTmpl.Execute(&b, struct{ Name string }{name})
	return b.String(), err
}

func renderResetRequest(resetURL string) (string, error) {
	var b strings.Builder
	err := resetRequestTmpl.Execute(&b, struct{ ResetURL string }{resetURL})
	return b.String(), err
}

func renderResetSuccess() (string, error) {
	var b strings.Builder
	err := resetSuccessTmpl.Execute(&b, nil)
	return b.String(), err
}
