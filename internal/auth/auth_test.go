package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AuthTestSuite struct {
	suite.Suite
	service    *AuthService
	middleware *AuthMiddleware
}

func (suite *AuthTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.service = NewAuthService("test-secret")
	suite.middleware = NewAuthMiddleware(suite.service)
}

func (suite *AuthTestSuite) TestValidateJWT_RoundTrip() {
	token, err := suite.service.GenerateToken("user-1", "jane@example.com", time.Hour)
	assert.NoError(suite.T(), err)

	claims, err := suite.service.ValidateJWT(token)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "user-1", claims.UserID)
	assert.Equal(suite.T(), "jane@example.com", claims.Email)
}

func (suite *AuthTestSuite) TestValidateJWT_WrongSecret() {
	other := NewAuthService("different-secret")
	token, err := other.GenerateToken("user-1", "jane@example.com", time.Hour)
	assert.NoError(suite.T(), err)

	_, err = suite.service.ValidateJWT(token)

	assert.Error(suite.T(), err)
}

func (suite *AuthTestSuite) TestValidateJWT_Expired() {
	token, err := suite.service.GenerateToken("user-1", "jane@example.com", -time.Minute)
	assert.NoError(suite.T(), err)

	_, err = suite.service.ValidateJWT(token)

	assert.Error(suite.T(), err)
}

func (suite *AuthTestSuite) TestValidateJWT_RejectsUnsignedToken() {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &AuthClaims{UserID: "user-1"})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(suite.T(), err)

	_, err = suite.service.ValidateJWT(tokenString)

	assert.Error(suite.T(), err)
}

func (suite *AuthTestSuite) router(handler gin.HandlerFunc, mw gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.GET("/protected", mw, handler)
	return router
}

func (suite *AuthTestSuite) TestRequireAuth_MissingHeader() {
	router := suite.router(func(c *gin.Context) { c.Status(http.StatusOK) }, suite.middleware.RequireAuth())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *AuthTestSuite) TestRequireAuth_MalformedHeader() {
	router := suite.router(func(c *gin.Context) { c.Status(http.StatusOK) }, suite.middleware.RequireAuth())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *AuthTestSuite) TestRequireAuth_SetsUserContext() {
	var gotUserID, gotEmail string
	router := suite.router(func(c *gin.Context) {
		gotUserID, _ = GetUserID(c)
		gotEmail, _ = GetUserEmail(c)
		c.Status(http.StatusOK)
	}, suite.middleware.RequireAuth())

	token, err := suite.service.GenerateToken("user-7", "sam@example.com", time.Hour)
	assert.NoError(suite.T(), err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "user-7", gotUserID)
	assert.Equal(suite.T(), "sam@example.com", gotEmail)
}

func (suite *AuthTestSuite) TestOptionalAuth_InvalidTokenContinuesAnonymously() {
	var hasUser bool
	router := suite.router(func(c *gin.Context) {
		_, hasUser = GetUserID(c)
		c.Status(http.StatusOK)
	}, suite.middleware.OptionalAuth())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.False(suite.T(), hasUser)
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}
