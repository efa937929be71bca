package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/ecoswap/ecoswap/internal/i18n"
)

// LoginPage renders the login form. errMsg, when non-empty, is shown
// above the form; email is echoed back so the user only retypes the
// password.
func LoginPage(tr i18n.Translator, errMsg, email string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, "<h1>%s</h1>\n", esc(tr.T("auth.login_title")))
		if errMsg != "" {
			fmt.Fprintf(w, `<div class="flash error">%s</div>`+"\n", esc(errMsg))
		}
		fmt.Fprintf(w, `<form class="stack card" method="post" action="/login">
<label for="email">%s</label>
<input id="email" name="email" type="email" value=%q required>
<label for="password">%s</label>
<input id="password" name="password" type="password" required>
<p><button type="submit">%s</button></p>
</form>
`, esc(tr.T("auth.email")), esc(email), esc(tr.T("auth.password")), esc(tr.T("auth.login_title")))
		return nil
	})
	return Layout(tr.T("auth.login_title"), nil, tr, nil, body)
}

// SignupPage renders the registration form, echoing prior values back
// on validation failure.
func SignupPage(tr i18n.Translator, errMsg, email, displayName, location string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, "<h1>%s</h1>\n", esc(tr.T("auth.signup_title")))
		if errMsg != "" {
			fmt.Fprintf(w, `<div class="flash error">%s</div>`+"\n", esc(errMsg))
		}
		fmt.Fprintf(w, `<form class="stack card" method="post" action="/signup">
<label for="email">%s</label>
<input id="email" name="email" type="email" value=%q required>
<label for="display_name">%s</label>
<input id="display_name" name="display_name" value=%q required>
<label for="location">%s</label>
<input id="location" name="location" value=%q required>
<label for="password">%s</label>
<input id="password" name="password" type="password" minlength="8" required>
<p><button type="submit">%s</button></p>
</form>
`, esc(tr.T("auth.email")), esc(email),
			esc(tr.T("auth.display_name")), esc(displayName),
			esc(tr.T("auth.location")), esc(location),
			esc(tr.T("auth.password")), esc(tr.T("auth.signup_title")))
		return nil
	})
	return Layout(tr.T("auth.signup_title"), nil, tr, nil, body)
}
