package templates

import (
	"bytes"
	"fmt"
	htmpl "html/template"
	texttpl "text/template"
)

type tpl struct {
	subject string
	text    string
	html    string
}

var registry = map[string]tpl{
	"verify_email": {
		subject: "Verify your email address",
		text: "Hi {{.Name}},\n\n" +
			"Confirm your email address to finish setting up your account:\n{{.VerifyURL}}\n\n" +
			"The link expires in 24 hours. If you didn't create an account, ignore this email.\n",
		html: `<p>Hi {{.Name}},</p>
<p>Confirm your email address to finish setting up your account:</p>
<p><a href="{{.VerifyURL}}">Verify email</a></p>
<p>The link expires in 24 hours. If you didn't create an account, ignore this email.</p>`,
	},
	"forgot_password": {
		subject: "Reset your password",
		text: "Hi {{.Name}},\n\n" +
			"We received a request to reset your password. Use this link within the next hour:\n{{.ResetURL}}\n\n" +
			"If you didn't request a reset, you can safely ignore this email.\n",
		html: `<p>Hi {{.Name}},</p>
<p>We received a request to reset your password. Use this link within the next hour:</p>
<p><a href="{{.ResetURL}}">Reset password</a></p>
<p>If you didn't request a reset, you can safely ignore this email.</p>`,
	},
}

// Render renders the named template, returning subject, text, and HTML bodies.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	t, ok := registry[name]
	if !ok {
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}

	tt, err := texttpl.New(name + ":text").Parse(t.text)
	if err != nil {
		return "", "", "", err
	}
	var tb bytes.Buffer
	if err := tt.Execute(&tb, data); err != nil {
		return "", "", "", err
	}

	ht, err := htmpl.New(name + ":html").Parse(t.html)
	if err != nil {
		return "", "", "", err
	}
	var hb bytes.Buffer
	if err := ht.Execute(&hb, data); err != nil {
		return "", "", "", err
	}

	return t.subject, tb.String(), hb.String(), nil
}
