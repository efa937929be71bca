package domain

// Session is the per-request identity and locale context. It is built
// by the auth middleware and passed explicitly; nothing reads ambient
// global state.
type Session struct {
	UserID      int64
	DisplayName string
	IsAdmin     bool
	Lang        string
}
