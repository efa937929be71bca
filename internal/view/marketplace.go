package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/ecoswap/ecoswap/internal/domain"
	"github.com/ecoswap/ecoswap/internal/i18n"
)

// Categories offered in the listing form and marketplace filter.
var Categories = []string{
	"Electronics", "Furniture", "Clothing", "Books", "Toys", "Sports", "Garden", "Other",
}

// Conditions offered in the listing form.
var Conditions = []string{"New", "Like New", "Good", "Fair", "Worn"}

// MarketplacePage renders the browsable grid of active listings.
func MarketplacePage(sess *domain.Session, tr i18n.Translator, flash *Flash, listings []domain.Listing, filter domain.ListingFilter) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, "<h1>%s</h1>\n", esc(tr.T("nav.marketplace")))

		// Filter bar.
		fmt.Fprintf(w, `<form class="card" method="get" action="/marketplace">
<input name="search" placeholder=%q value=%q>
<select name="category"><option value="">%s</option>`,
			esc(tr.T("listing.search")), esc(filter.Search), esc(tr.T("listing.all_categories")))
		for _, c := range Categories {
			fmt.Fprintf(w, `<option value=%q%s>%s</option>`, esc(c), selected(filter.Category == c), esc(c))
		}
		fmt.Fprintf(w, `</select>
<select name="type"><option value="">%s</option>
<option value="Exchange"%s>%s</option>
<option value="Donate"%s>%s</option>
</select>
<button type="submit">%s</button>
</form>
`, esc(tr.T("listing.all_types")),
			selected(filter.ListingType == "Exchange"), esc(tr.T("listing.type_exchange")),
			selected(filter.ListingType == "Donate"), esc(tr.T("listing.type_donate")),
			esc(tr.T("listing.search")))

		if len(listings) == 0 {
			fmt.Fprintf(w, "<p>%s</p>\n", esc(tr.T("listing.none")))
			return nil
		}

		io.WriteString(w, `<div class="grid">`+"\n")
		for _, l := range listings {
			io.WriteString(w, `<div class="card">`+"\n")
			if l.ImageKey != "" {
				fmt.Fprintf(w, `<img class="thumb" src="/images/%s" alt=%q>`+"\n", esc(l.ImageKey), esc(l.Title))
			}
			fmt.Fprintf(w, "<h3>%s</h3>\n", esc(l.Title))
			fmt.Fprintf(w, "<p>%s</p>\n", esc(l.Description))
			fmt.Fprintf(w, `<p><span class="tag">%s</span> <span class="tag">%s</span> <span class="tag">%s</span></p>`+"\n",
				esc(l.Category), esc(l.Condition), esc(typeLabel(tr, l.ListingType)))
			fmt.Fprintf(w, "<p>%s %s · %s</p>\n",
				esc(tr.T("listing.offered_by")), esc(l.OwnerName), esc(l.OwnerLocation))
			if sess != nil && l.UserID != sess.UserID {
				fmt.Fprintf(w, `<a class="btn" href="/request-item/%d">%s</a>`+"\n", l.ID, esc(tr.T("listing.request")))
			}
			io.WriteString(w, "</div>\n")
		}
		io.WriteString(w, "</div>\n")
		return nil
	})
	return Layout(tr.T("nav.marketplace"), sess, tr, flash, body)
}

func selected(is bool) string {
	if is {
		return " selected"
	}
	return ""
}

func typeLabel(tr i18n.Translator, t domain.ListingType) string {
	if t == domain.ListingTypeDonate {
		return tr.T("listing.type_donate")
	}
	return tr.T("listing.type_exchange")
}

func statusLabel(tr i18n.Translator, s domain.ListingStatus) string {
	if s == domain.ListingStatusInactive {
		return tr.T("listing.status_inactive")
	}
	return tr.T("listing.status_active")
}
