package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/ecoswap/ecoswap/internal/domain"
	"github.com/ecoswap/ecoswap/internal/i18n"
)

// HomePage renders the landing page.
func HomePage(sess *domain.Session, tr i18n.Translator, flash *Flash) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, "<h1>%s</h1>\n", esc(tr.T("home.title")))
		fmt.Fprintf(w, "<p>%s</p>\n", esc(tr.T("home.tagline")))
		if sess == nil {
			fmt.Fprintf(w, `<p><a class="btn" href="/signup">%s</a> <a class="btn muted" href="/login">%s</a></p>`+"\n",
				esc(tr.T("nav.signup")), esc(tr.T("nav.login")))
		} else {
			fmt.Fprintf(w, `<p><a class="btn" href="/marketplace">%s</a></p>`+"\n", esc(tr.T("nav.marketplace")))
		}
		return nil
	})
	return Layout(tr.T("nav.home"), sess, tr, flash, body)
}
