package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/ecoswap/ecoswap/internal/domain"
	"github.com/ecoswap/ecoswap/internal/i18n"
)

// MyListingsPage renders the owner's listings with edit/delete links.
func MyListingsPage(sess *domain.Session, tr i18n.Translator, flash *Flash, listings []domain.Listing) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, "<h1>%s</h1>\n", esc(tr.T("nav.my_listings")))
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
			fmt.Fprintf(w, `<p><span class="tag %s">%s</span> <span class="tag">%s</span></p>`+"\n",
				esc(string(l.Status)), esc(statusLabel(tr, l.Status)), esc(typeLabel(tr, l.ListingType)))
			fmt.Fprintf(w, `<p><a class="btn muted" href="/edit-listing/%d">%s</a> <a class="btn danger" href="/delete-listing/%d">%s</a></p>`+"\n",
				l.ID, esc(tr.T("listing.edit")), l.ID, esc(tr.T("listing.delete")))
			io.WriteString(w, "</div>\n")
		}
		io.WriteString(w, "</div>\n")
		return nil
	})
	return Layout(tr.T("nav.my_listings"), sess, tr, flash, body)
}

// ListingFormPage renders the create or edit form. listing is nil for
// creation; errMsg, when non-empty, is shown above the form.
func ListingFormPage(sess *domain.Session, tr i18n.Translator, listing *domain.Listing, errMsg string) templ.Component {
	title := tr.T("nav.create_listing")
	action := "/create-listing"
	if listing != nil && listing.ID != 0 {
		title = tr.T("listing.edit")
		action = fmt.Sprintf("/edit-listing/%d", listing.ID)
	}

	var l domain.Listing
	if listing != nil {
		l = *listing
	}

	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, "<h1>%s</h1>\n", esc(title))
		if errMsg != "" {
			fmt.Fprintf(w, `<div class="flash error">%s</div>`+"\n", esc(errMsg))
		}

		fmt.Fprintf(w, `<form class="stack card" method="post" action=%q enctype="multipart/form-data">
<label for="title">%s</label>
<input id="title" name="title" value=%q required>
<label for="description">%s</label>
<textarea id="description" name="description" rows="4" required>%s</textarea>
<label for="category">%s</label>
<select id="category" name="category">`,
			esc(action), esc(tr.T("listing.title")), esc(l.Title),
			esc(tr.T("listing.description")), esc(l.Description),
			esc(tr.T("listing.category")))
		for _, c := range Categories {
			fmt.Fprintf(w, `<option value=%q%s>%s</option>`, esc(c), selected(l.Category == c), esc(c))
		}
		fmt.Fprintf(w, `</select>
<label for="condition">%s</label>
<select id="condition" name="condition">`, esc(tr.T("listing.condition")))
		for _, c := range Conditions {
			fmt.Fprintf(w, `<option value=%q%s>%s</option>`, esc(c), selected(l.Condition == c), esc(c))
		}
		fmt.Fprintf(w, `</select>
<label for="listing_type">%s</label>
<select id="listing_type" name="listing_type">
<option value="Exchange"%s>%s</option>
<option value="Donate"%s>%s</option>
</select>
`, esc(tr.T("listing.type")),
			selected(l.ListingType == domain.ListingTypeExchange), esc(tr.T("listing.type_exchange")),
			selected(l.ListingType == domain.ListingTypeDonate), esc(tr.T("listing.type_donate")))

		// Photos can only be attached at creation time.
		if l.ID == 0 {
			fmt.Fprintf(w, `<label for="image">%s</label>
<input id="image" name="image" type="file" accept="image/*">
`, esc(tr.T("listing.image")))
		}

		fmt.Fprintf(w, "<p><button type=\"submit\">%s</button></p>\n</form>\n", esc(title))
		return nil
	})
	return Layout(title, sess, tr, nil, body)
}
