package access

import postPort "yatube/internal/ports/post"

// Session describes the requesting user. UserID is empty for anonymous
// visitors; handlers build it once per request from the auth middleware.
type Session struct {
	UserID   string
	Username string
}

func (s Session) Authenticated() bool {
	return s.UserID != ""
}

// CanCreate reports whether the session may create posts or comments.
func CanCreate(s Session) bool {
	return s.Authenticated()
}

// CanEdit reports whether the session may edit the given post. Only the
// author may.
func CanEdit(s Session, p *postPort.PostDTO) bool {
	return s.Authenticated() && p != nil && s.UserID == p.AuthorID
}
