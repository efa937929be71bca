// Package view renders the HTML pages. Components are written directly
// against the templ runtime: each page builds a templ.Component whose
// Render writes escaped markup to the response writer.
package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/ecoswap/ecoswap/internal/domain"
	"github.com/ecoswap/ecoswap/internal/i18n"
)

// Flash is a one-shot notice carried across a redirect.
type Flash struct {
	Message string
	Kind    string // "success" or "error"
}

// esc HTML-escapes a value for element content or attribute values.
func esc(s string) string {
	return templ.EscapeString(s)
}

// Layout wraps a page body with the shared chrome: head, nav bar,
// flash banner, and the datastar client script.
func Layout(title string, sess *domain.Session, tr i18n.Translator, flash *Flash, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<!DOCTYPE html>
<html lang=%q>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s — EcoSwap</title>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@main/bundles/datastar.js"></script>
<style>
body{font-family:system-ui,sans-serif;margin:0;background:#f4f7f4;color:#1c2a1c}
nav{background:#2e7d32;color:#fff;padding:.75rem 1.25rem;display:flex;gap:1rem;align-items:center;flex-wrap:wrap}
nav a{color:#fff;text-decoration:none}
nav a:hover{text-decoration:underline}
nav .spacer{flex:1}
main{max-width:960px;margin:1.5rem auto;padding:0 1rem}
.flash{padding:.6rem 1rem;border-radius:4px;margin-bottom:1rem}
.flash.success{background:#dcf1dd;border:1px solid #2e7d32}
.flash.error{background:#fde3e3;border:1px solid #b23b3b}
.card{background:#fff;border:1px solid #d7e0d7;border-radius:6px;padding:1rem;margin-bottom:1rem}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(260px,1fr));gap:1rem}
form.stack label{display:block;margin:.5rem 0 .2rem;font-weight:600}
form.stack input,form.stack select,form.stack textarea{width:100%%;padding:.45rem;border:1px solid #bcc9bc;border-radius:4px;box-sizing:border-box}
button,.btn{display:inline-block;background:#2e7d32;color:#fff;border:none;border-radius:4px;padding:.5rem .9rem;cursor:pointer;text-decoration:none;font-size:.95rem}
.btn.danger{background:#b23b3b}
.btn.muted{background:#6b7b6b}
table{width:100%%;border-collapse:collapse;background:#fff}
th,td{text-align:left;padding:.5rem .65rem;border-bottom:1px solid #e2e9e2}
.tag{display:inline-block;padding:.1rem .5rem;border-radius:999px;font-size:.8rem;background:#e6efe6}
.tag.Inactive,.tag.Declined{background:#eee;color:#666}
.tag.Accepted{background:#dcf1dd}
.stats{display:flex;gap:1rem;flex-wrap:wrap}
.stats .card{flex:1;min-width:160px;text-align:center}
.stats .num{font-size:2rem;font-weight:700}
img.thumb{width:100%%;height:160px;object-fit:cover;border-radius:4px}
</style>
</head>
<body>
`, esc(tr.Lang), esc(title))

		if err := navBar(sess, tr).Render(ctx, w); err != nil {
			return err
		}

		io.WriteString(w, "<main>\n")
		if flash != nil && flash.Message != "" {
			kind := flash.Kind
			if kind != "success" {
				kind = "error"
			}
			fmt.Fprintf(w, `<div class="flash %s">%s</div>`+"\n", kind, esc(flash.Message))
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		io.WriteString(w, "</main>\n</body>\n</html>\n")
		return nil
	})
}

func navBar(sess *domain.Session, tr i18n.Translator) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, "<nav>\n")
		fmt.Fprintf(w, `<a href="/"><strong>EcoSwap</strong></a>`+"\n")
		if sess != nil {
			fmt.Fprintf(w, `<a href="/marketplace">%s</a>`+"\n", esc(tr.T("nav.marketplace")))
			fmt.Fprintf(w, `<a href="/my-listings">%s</a>`+"\n", esc(tr.T("nav.my_listings")))
			fmt.Fprintf(w, `<a href="/my-requests">%s</a>`+"\n", esc(tr.T("nav.my_requests")))
			fmt.Fprintf(w, `<a href="/create-listing">%s</a>`+"\n", esc(tr.T("nav.create_listing")))
			if sess.IsAdmin {
				fmt.Fprintf(w, `<a href="/admin">%s</a>`+"\n", esc(tr.T("nav.admin")))
			}
		}
		io.WriteString(w, `<span class="spacer"></span>`+"\n")
		fmt.Fprintf(w, `<a href="/set-language/en">EN</a> <a href="/set-language/de">DE</a>`+"\n")
		if sess != nil {
			fmt.Fprintf(w, `<span>%s</span>`+"\n", esc(sess.DisplayName))
			fmt.Fprintf(w, `<a href="/logout">%s</a>`+"\n", esc(tr.T("nav.logout")))
		} else {
			fmt.Fprintf(w, `<a href="/login">%s</a>`+"\n", esc(tr.T("nav.login")))
			fmt.Fprintf(w, `<a href="/signup">%s</a>`+"\n", esc(tr.T("nav.signup")))
		}
		io.WriteString(w, "</nav>\n")
		return nil
	})
}
