package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/ecoswap/ecoswap/internal/domain"
	"github.com/ecoswap/ecoswap/internal/i18n"
)

// MyRequestsPage renders both directions of request traffic: requests
// the user sent and requests received on the user's listings.
func MyRequestsPage(sess *domain.Session, tr i18n.Translator, flash *Flash, sent, received []domain.Request) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, "<h1>%s</h1>\n", esc(tr.T("nav.my_requests")))

		fmt.Fprintf(w, "<h2>%s</h2>\n", esc(tr.T("request.mine_title")))
		if len(sent) == 0 {
			fmt.Fprintf(w, "<p>%s</p>\n", esc(tr.T("request.none")))
		} else {
			fmt.Fprintf(w, "<table>\n<tr><th>%s</th><th>%s</th><th></th></tr>\n",
				esc(tr.T("listing.title")), esc(tr.T("listing.offered_by")))
			for _, r := range sent {
				fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td><span class="tag %s">%s</span></td></tr>`+"\n",
					esc(r.ListingTitle), esc(r.OwnerName),
					esc(string(r.Status)), esc(tr.T("request.status."+string(r.Status))))
			}
			io.WriteString(w, "</table>\n")
		}

		fmt.Fprintf(w, "<h2>%s</h2>\n", esc(tr.T("request.received_title")))
		if len(received) == 0 {
			fmt.Fprintf(w, "<p>%s</p>\n", esc(tr.T("request.none")))
			return nil
		}
		fmt.Fprintf(w, "<table>\n<tr><th>%s</th><th></th><th></th><th></th></tr>\n",
			esc(tr.T("listing.title")))
		for _, r := range received {
			fmt.Fprintf(w, "<tr><td>%s</td><td>%s</td>", esc(r.ListingTitle), esc(r.RequesterName))
			fmt.Fprintf(w, `<td><span class="tag %s">%s</span></td>`,
				esc(string(r.Status)), esc(tr.T("request.status."+string(r.Status))))
			if r.Status == domain.RequestStatusPending {
				fmt.Fprintf(w, `<td><a class="btn" href="/handle-request/%d/accept">%s</a> <a class="btn danger" href="/handle-request/%d/decline">%s</a></td>`,
					r.ID, esc(tr.T("request.accept")), r.ID, esc(tr.T("request.decline")))
			} else {
				io.WriteString(w, "<td></td>")
			}
			io.WriteString(w, "</tr>\n")
		}
		io.WriteString(w, "</table>\n")
		return nil
	})
	return Layout(tr.T("nav.my_requests"), sess, tr, flash, body)
}
