package session

import (
	"encoding/gob"
	"net/http"
	"time"

	"github.com/gorilla/sessions"

	"newel/internal/entity"
)

const (
	cookieName = "app-session"

	// Lifetime caps how long a signed cookie stays valid. Expiry is
	// evaluated by the cookie codec on next access, not by a timer.
	Lifetime = 7 * 24 * time.Hour
)

// Identity is the denormalized snapshot of a user taken at login time.
// A nil Identity means the request is anonymous.
type Identity struct {
	UserID    int
	Username  string
	FullName  string
	Role      entity.Role
	ClassName string
}

// Notice is a one-shot message shown on the next rendered page.
type Notice struct {
	Kind    string
	Message string
}

func init() {
	gob.Register(Notice{})
}

// Manager wraps a signed cookie store. Handlers receive it explicitly;
// there is no process-wide session state.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secretKey []byte) *Manager {
	store := sessions.NewCookieStore(secretKey)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(Lifetime / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// Current returns the authenticated identity for the request, or nil.
// A cookie that fails signature or age validation counts as anonymous.
func (m *Manager) Current(r *http.Request) *Identity {
	session, err := m.store.Get(r, cookieName)
	if err != nil {
		return nil
	}

	userID, ok := session.Values["user_id"].(int)
	if !ok || userID == 0 {
		return nil
	}

	username, _ := session.Values["username"].(string)
	fullName, _ := session.Values["full_name"].(string)
	role, _ := session.Values["role"].(string)
	className, _ := session.Values["class_name"].(string)

	return &Identity{
		UserID:    userID,
		Username:  username,
		FullName:  fullName,
		Role:      entity.Role(role),
		ClassName: className,
	}
}

// Establish writes the full identity snapshot in one save; the session is
// never left partially populated.
func (m *Manager) Establish(w http.ResponseWriter, r *http.Request, user *entity.User) error {
	session, _ := m.store.Get(r, cookieName)

	className := ""
	if user.ClassName != nil {
		className = *user.ClassName
	}

	session.Values["user_id"] = user.ID
	session.Values["username"] = user.Username
	session.Values["full_name"] = user.FullName
	session.Values["role"] = string(user.Role)
	session.Values["class_name"] = className

	return session.Save(r, w)
}

// Clear drops every session value. Clearing an absent session is fine, so
// logout stays idempotent. The cookie itself survives to carry the logout
// notice.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, cookieName)
	for k := range session.Values {
		delete(session.Values, k)
	}
	return session.Save(r, w)
}

// Flash queues a notice for the next rendered page.
func (m *Manager) Flash(w http.ResponseWriter, r *http.Request, kind, message string) {
	session, _ := m.store.Get(r, cookieName)
	session.AddFlash(Notice{Kind: kind, Message: message})
	session.Save(r, w)
}

// PopFlashes drains queued notices.
func (m *Manager) PopFlashes(w http.ResponseWriter, r *http.Request) []Notice {
	session, _ := m.store.Get(r, cookieName)
	flashes := session.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	session.Save(r, w)

	notices := make([]Notice, 0, len(flashes))
	for _, f := range flashes {
		if n, ok := f.(Notice); ok {
			notices = append(notices, n)
		}
	}
	return notices
}
