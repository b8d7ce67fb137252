package session

import (
	"encoding/json"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"bakery_frontdesk/pkg/models"
)

// Session keys. currentUser/token mirror the keys the old browser front-end
// kept in local storage; here they live server-side in the cookie session,
// which is the single source of truth for identity.
const (
	keyCurrentUser = "currentUser"
	keyToken       = "token"
)

// CurrentUser is the identity snapshot stored in the session.
type CurrentUser struct {
	ID    int         `json:"id"`
	Name  string      `json:"name"`
	Role  models.Role `json:"role"`
	Phone string      `json:"phone"`
}

// Set stores the logged-in user and upstream bearer token in the session.
func Set(c *gin.Context, user models.User, token string) error {
	snapshot, err := json.Marshal(CurrentUser{
		ID:    user.ID,
		Name:  user.Name,
		Role:  user.Role,
		Phone: user.Phone,
	})
	if err != nil {
		return err
	}

	s := sessions.Default(c)
	s.Set(keyCurrentUser, string(snapshot))
	s.Set(keyToken, token)
	return s.Save()
}

// Get returns the stored identity and token, if any.
func Get(c *gin.Context) (*CurrentUser, string, bool) {
	s := sessions.Default(c)

	raw, ok := s.Get(keyCurrentUser).(string)
	if !ok || raw == "" {
		return nil, "", false
	}
	token, ok := s.Get(keyToken).(string)
	if !ok || token == "" {
		return nil, "", false
	}

	var user CurrentUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, "", false
	}
	return &user, token, true
}

// Clear removes the identity from the session (logout or expired token).
func Clear(c *gin.Context) error {
	s := sessions.Default(c)
	s.Delete(keyCurrentUser)
	s.Delete(keyToken)
	return s.Save()
}
