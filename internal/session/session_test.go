package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const testSecret = "complex_password_at_least_32_characters_long"

func newTestManager(ttl time.Duration) *Manager {
	return NewManager(testSecret, "test_session", ttl, false)
}

func currentFor(t *testing.T, m *Manager, cookie *http.Cookie) (Identity, bool) {
	t.Helper()

	var (
		ident Identity
		ok    bool
	)

	r := ginext.New("test")
	r.GET("/", func(c *ginext.Context) {
		ident, ok = m.Current(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	r.ServeHTTP(httptest.NewRecorder(), req)

	return ident, ok
}

func TestManager_RoundTrip(t *testing.T) {
	m := newTestManager(time.Hour)

	token, err := m.Token(Identity{UserID: "u1", Username: "kiwi_foodie"})
	require.NoError(t, err)

	ident, ok := currentFor(t, m, &http.Cookie{Name: m.CookieName(), Value: token})

	require.True(t, ok)
	assert.Equal(t, "u1", ident.UserID)
	assert.Equal(t, "kiwi_foodie", ident.Username)
}

func TestManager_Current_NoCookie(t *testing.T) {
	m := newTestManager(time.Hour)

	_, ok := currentFor(t, m, nil)

	assert.False(t, ok)
}

func TestManager_Current_Garbage(t *testing.T) {
	m := newTestManager(time.Hour)

	_, ok := currentFor(t, m, &http.Cookie{Name: m.CookieName(), Value: "not-a-jwt"})

	assert.False(t, ok)
}

func TestManager_Current_Expired(t *testing.T) {
	m := newTestManager(-time.Minute)

	token, err := m.Token(Identity{UserID: "u1", Username: "kiwi_foodie"})
	require.NoError(t, err)

	_, ok := currentFor(t, m, &http.Cookie{Name: m.CookieName(), Value: token})

	assert.False(t, ok)
}

func TestManager_Current_WrongSecret(t *testing.T) {
	other := NewManager("another_secret_that_is_also_32_chars_long!!", "test_session", time.Hour, false)
	token, err := other.Token(Identity{UserID: "u1", Username: "kiwi_foodie"})
	require.NoError(t, err)

	m := newTestManager(time.Hour)
	_, ok := currentFor(t, m, &http.Cookie{Name: m.CookieName(), Value: token})

	assert.False(t, ok)
}

func TestManager_Issue_SetsCookie(t *testing.T) {
	m := newTestManager(time.Hour)

	r := ginext.New("test")
	r.POST("/login", func(c *ginext.Context) {
		require.NoError(t, m.Issue(c, Identity{UserID: "u1", Username: "kiwi_foodie"}))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, m.CookieName(), cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}

func TestManager_Clear_ExpiresCookie(t *testing.T) {
	m := newTestManager(time.Hour)

	r := ginext.New("test")
	r.POST("/logout", func(c *ginext.Context) {
		m.Clear(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, m.CookieName(), cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
