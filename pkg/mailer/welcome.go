package mailer

import "fmt"

// WelcomeEmail renders the plain-text and HTML bodies sent after a
// successful registration.
func WelcomeEmail(name, lastname string) (subject, text, html string) {
	full := name
	if lastname != "" {
		full = name + " " + lastname
	}
	subject = "Welcome to your new account"
	text = fmt.Sprintf("Hi %s,\n\nYour account has been created and is ready to use.\n", full)
	html = fmt.Sprintf(`<p>Hi %s,</p><p>Your account has been created and is ready to use.</p>`, full)
	return subject, text, html
}
