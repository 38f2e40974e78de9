package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxAgeFrom(t *testing.T) {
	assert.Equal(t, -1, maxAgeFrom(time.Now().Add(-time.Hour)))
	assert.Equal(t, -1, maxAgeFrom(time.Time{}))

	future := maxAgeFrom(time.Now().Add(10 * time.Minute))
	assert.Greater(t, future, 590)
	assert.LessOrEqual(t, future, 600)
}

func TestSetPairExpiredTokenDeletesCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	m := NewCookie("", false)
	m.SetPair(c, "at", time.Now().Add(-time.Minute), "rt", time.Now().Add(time.Hour))

	res := rec.Result()
	defer func() { _ = res.Body.Close() }()
	cookies := res.Cookies()
	require.Len(t, cookies, 2)

	byName := map[string]*http.Cookie{}
	for _, ck := range cookies {
		byName[ck.Name] = ck
	}
	// an already-expired access token must come back as a deletion, not a
	// session cookie
	assert.Equal(t, -1, byName["access_token"].MaxAge)
	assert.Greater(t, byName["refresh_token"].MaxAge, 0)
}
