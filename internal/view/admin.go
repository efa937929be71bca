package view

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"
	"github.com/ecoswap/ecoswap/internal/domain"
	"github.com/ecoswap/ecoswap/internal/i18n"
)

// AdminDashboardPage renders the moderation dashboard. The stats block
// refreshes itself every few seconds via datastar.
func AdminDashboardPage(sess *domain.Session, tr i18n.Translator, flash *Flash, members, activeListings, totalRequests int64) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, "<h1>%s</h1>\n", esc(tr.T("admin.dashboard_title")))
		fmt.Fprintf(w, `<div id="admin-stats" data-on-interval__duration.10s="@get('/admin/stats')">`+"\n")
		if err := AdminStatsFragment(tr, members, activeListings, totalRequests).Render(ctx, w); err != nil {
			return err
		}
		io.WriteString(w, "</div>\n")
		fmt.Fprintf(w, `<p><a class="btn" href="/admin/users">%s</a> <a class="btn" href="/admin/listings">%s</a></p>`+"\n",
			esc(tr.T("admin.users_title")), esc(tr.T("admin.listings_title")))
		return nil
	})
	return Layout(tr.T("admin.dashboard_title"), sess, tr, flash, body)
}

// AdminStatsFragment is the dashboard counter block, rendered whole on
// page load and re-patched over SSE.
func AdminStatsFragment(tr i18n.Translator, members, activeListings, totalRequests int64) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<div class="stats">`+"\n")
		fmt.Fprintf(w, `<div class="card"><div class="num">%d</div>%s</div>`+"\n", members, esc(tr.T("admin.total_users")))
		fmt.Fprintf(w, `<div class="card"><div class="num">%d</div>%s</div>`+"\n", activeListings, esc(tr.T("admin.active_listings")))
		fmt.Fprintf(w, `<div class="card"><div class="num">%d</div>%s</div>`+"\n", totalRequests, esc(tr.T("admin.total_requests")))
		io.WriteString(w, "</div>\n")
		return nil
	})
}

// AdminUsersPage renders the member moderation table.
func AdminUsersPage(sess *domain.Session, tr i18n.Translator, flash *Flash, users []domain.User) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, "<h1>%s</h1>\n", esc(tr.T("admin.users_title")))
		fmt.Fprintf(w, "<table>\n<tr><th>%s</th><th>%s</th><th>%s</th><th></th><th></th></tr>\n",
			esc(tr.T("auth.email")), esc(tr.T("auth.display_name")), esc(tr.T("auth.location")))
		for _, u := range users {
			fmt.Fprintf(w, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td>",
				esc(u.Email), esc(u.DisplayName), esc(u.Location), esc(u.CreatedAt.Format(time.DateOnly)))
			fmt.Fprintf(w, `<td><a class="btn danger" href="/admin/delete-user/%d">%s</a></td></tr>`+"\n",
				u.ID, esc(tr.T("listing.delete")))
		}
		io.WriteString(w, "</table>\n")
		return nil
	})
	return Layout(tr.T("admin.users_title"), sess, tr, flash, body)
}

// AdminListingsPage renders the full listing moderation table.
func AdminListingsPage(sess *domain.Session, tr i18n.Translator, flash *Flash, listings []domain.Listing) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, "<h1>%s</h1>\n", esc(tr.T("admin.listings_title")))
		fmt.Fprintf(w, "<table>\n<tr><th>%s</th><th>%s</th><th>%s</th><th></th><th></th></tr>\n",
			esc(tr.T("listing.title")), esc(tr.T("listing.offered_by")), esc(tr.T("listing.category")))
		for _, l := range listings {
			fmt.Fprintf(w, "<tr><td>%s</td><td>%s (%s)</td><td>%s</td>",
				esc(l.Title), esc(l.OwnerName), esc(l.OwnerEmail), esc(l.Category))
			fmt.Fprintf(w, `<td><span class="tag %s">%s</span></td>`,
				esc(string(l.Status)), esc(statusLabel(tr, l.Status)))
			fmt.Fprintf(w, `<td><a class="btn danger" href="/admin/delete-listing/%d">%s</a></td></tr>`+"\n",
				l.ID, esc(tr.T("listing.delete")))
		}
		io.WriteString(w, "</table>\n")
		return nil
	})
	return Layout(tr.T("admin.listings_title"), sess, tr, flash, body)
}
