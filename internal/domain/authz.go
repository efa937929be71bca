package domain

// Authorization predicates. All are pure: they inspect the actor and
// the record and return a verdict, never an error. Callers translate a
// false into an opaque not-found or a redirect.

// CanEditListing reports whether actor may edit the listing. Only the
// owner may; admins get no override on edits.
func CanEditListing(actor *User, listing *Listing) bool {
	return actor != nil && listing != nil && actor.ID == listing.UserID
}

// CanDeleteListing reports whether actor may delete the listing: the
// owner, or an admin moderating it away.
func CanDeleteListing(actor *User, listing *Listing) bool {
	if actor == nil || listing == nil {
		return false
	}
	return actor.ID == listing.UserID || actor.IsAdmin
}

// CanRequestListing reports whether actor may request the listing.
// Owners can never request their own items. alreadyRequested is the
// caller-supplied duplicate check; listing status is deliberately not
// consulted.
func CanRequestListing(actor *User, listing *Listing, alreadyRequested bool) bool {
	if actor == nil || listing == nil {
		return false
	}
	if actor.ID == listing.UserID {
		return false
	}
	return !alreadyRequested
}

// CanHandleRequest reports whether actor may accept or decline the
// request on the given listing. Only the listing owner may; there is
// no admin override for this operation.
func CanHandleRequest(actor *User, request *Request, listing *Listing) bool {
	if actor == nil || request == nil || listing == nil {
		return false
	}
	if request.ListingID != listing.ID {
		return false
	}
	return actor.ID == listing.UserID
}

// CanDeleteUser reports whether actor may delete target. Admins may
// delete members; admin accounts are immutable through this path.
func CanDeleteUser(actor, target *User) bool {
	if actor == nil || target == nil {
		return false
	}
	return actor.IsAdmin && !target.IsAdmin
}
