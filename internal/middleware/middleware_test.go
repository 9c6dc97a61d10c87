package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"acronym-finder/internal/managers"
	"acronym-finder/internal/managers/mocks"
	"acronym-finder/internal/repositories"
	"acronym-finder/internal/schemas"
	"acronym-finder/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestInjectTrace(t *testing.T) {
	router := gin.New()
	router.Use(InjectTrace())

	var seen string
	router.GET("/", func(c *gin.Context) {
		seen = c.GetString(utils.TraceIdKey.String())
		c.Status(http.StatusOK)
	})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, first.Header().Get("X-Trace-Id"))

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEqual(t, first.Header().Get("X-Trace-Id"), second.Header().Get("X-Trace-Id"))
}

func TestValidateAndSanitizeStruct(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		status     int
		code       string
		definition string
	}{
		{"Valid", `{"acronym":"DRY","definition":"Don't Repeat Yourself"}`, http.StatusOK, "", "Don't Repeat Yourself"},
		{"KeepsAmpersand", `{"acronym":"R&D","definition":"Research & Development"}`, http.StatusOK, "", "Research & Development"},
		{"RejectsMarkup", `{"acronym":"DRY","definition":"<script>x</script>Don't <i>Repeat</i>"}`, http.StatusBadRequest, "ERR-003", ""},
		{"RejectsEncodedMarkup", `{"acronym":"DRY","definition":"&lt;script&gt;alert(1)&lt;/script&gt;"}`, http.StatusBadRequest, "ERR-003", ""},
		{"EmptyBody", ``, http.StatusBadRequest, "ERR-002", ""},
		{"MalformedJSON", `{"acronym":`, http.StatusBadRequest, "ERR-001", ""},
		{"WrongType", `{"acronym":42,"definition":"x"}`, http.StatusBadRequest, "ERR-001", ""},
		{"TooLong", `{"acronym":"` + strings.Repeat("A", 33) + `","definition":"x"}`, http.StatusBadRequest, "ERR-003", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()

			var payload *schemas.CreateAcronymRequest
			router.POST("/", ValidateAndSanitizeStruct[schemas.CreateAcronymRequest](), func(c *gin.Context) {
				payload = c.Value(utils.SanitizedPayloadKey.String()).(*schemas.CreateAcronymRequest)
				c.Status(http.StatusOK)
			})

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body)))

			assert.Equal(t, tc.status, recorder.Code)
			if tc.status == http.StatusOK {
				require.NotNil(t, payload)
				assert.Equal(t, tc.definition, payload.Definition)
			} else {
				assert.Nil(t, payload)
				assert.Contains(t, recorder.Body.String(), tc.code)
			}
		})
	}
}

func TestValidateAndSanitizeStructUsesFreshPayloads(t *testing.T) {
	router := gin.New()

	var payloads []*schemas.CreateAcronymRequest
	router.POST("/", ValidateAndSanitizeStruct[schemas.CreateAcronymRequest](), func(c *gin.Context) {
		payloads = append(payloads, c.Value(utils.SanitizedPayloadKey.String()).(*schemas.CreateAcronymRequest))
		c.Status(http.StatusOK)
	})

	for _, body := range []string{
		`{"acronym":"A","definition":"first","notes":"only here"}`,
		`{"acronym":"B","definition":"second"}`,
	} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	}

	require.Len(t, payloads, 2)
	assert.NotSame(t, payloads[0], payloads[1])
	assert.Equal(t, "only here", payloads[0].Notes)
	assert.Empty(t, payloads[1].Notes)
}

func TestBasicAuth(t *testing.T) {
	passwordMgr := managers.NewPasswordManager(bcrypt.MinCost)
	digest, err := passwordMgr.HashPassword("correct.password")
	require.NoError(t, err)
	stored := &schemas.User{ID: "1", Username: "alice", Password: digest, FirstName: "Alice"}

	testCases := []struct {
		name     string
		username string
		password string
		noHeader bool
		user     *schemas.User
		err      error
		status   int
	}{
		{"Valid", "alice", "correct.password", false, stored, nil, http.StatusOK},
		{"WrongPassword", "alice", "wrong.password", false, stored, nil, http.StatusUnauthorized},
		{"UnknownUser", "bob", "correct.password", false, nil, repositories.ErrNotFound, http.StatusUnauthorized},
		{"NoHeader", "", "", true, nil, nil, http.StatusUnauthorized},
		{"StoreFailure", "alice", "correct.password", false, nil, errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			userRepoMock := &mocks.MockUserRepository{}
			userRepoMock.On("GetUserByUsername", mock.Anything, tc.username).Return(tc.user, tc.err)
			databaseMgrMock := &mocks.MockDatabaseManager{}
			databaseMgrMock.On("Users").Return(userRepoMock)

			router := gin.New()
			var authenticated schemas.UserDTO
			router.POST("/", BasicAuth(databaseMgrMock, passwordMgr), func(c *gin.Context) {
				authenticated = c.Value(utils.UserKey.String()).(schemas.UserDTO)
				c.Status(http.StatusOK)
			})

			request := httptest.NewRequest(http.MethodPost, "/", nil)
			if !tc.noHeader {
				request.SetBasicAuth(tc.username, tc.password)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tc.status, recorder.Code)
			switch tc.status {
			case http.StatusOK:
				assert.Equal(t, schemas.NewUserDTO(stored), authenticated)
			case http.StatusUnauthorized:
				assert.JSONEq(t, `{"message":"Unauthorized","code":"ERR-005"}`, recorder.Body.String())
				assert.Empty(t, authenticated.Username)
			}
			if tc.noHeader {
				userRepoMock.AssertNotCalled(t, "GetUserByUsername", mock.Anything, mock.Anything)
			}
		})
	}
}

type recordingPasswordManager struct {
	managers.PasswordMgr
	verified []string
}

func (pm *recordingPasswordManager) VerifyPassword(password, digest string) bool {
	pm.verified = append(pm.verified, digest)
	return pm.PasswordMgr.VerifyPassword(password, digest)
}

func TestBasicAuthRunsBcryptForUnknownUsers(t *testing.T) {
	passwordMgr := &recordingPasswordManager{PasswordMgr: managers.NewPasswordManager(bcrypt.MinCost)}

	userRepoMock := &mocks.MockUserRepository{}
	userRepoMock.On("GetUserByUsername", mock.Anything, "bob").Return(nil, repositories.ErrNotFound)
	databaseMgrMock := &mocks.MockDatabaseManager{}
	databaseMgrMock.On("Users").Return(userRepoMock)

	router := gin.New()
	handlerCalled := false
	router.POST("/", BasicAuth(databaseMgrMock, passwordMgr), func(c *gin.Context) {
		handlerCalled = true
	})

	request := httptest.NewRequest(http.MethodPost, "/", nil)
	request.SetBasicAuth("bob", "unknown user placeholder")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, handlerCalled)
	require.Len(t, passwordMgr.verified, 1)
	cost, err := bcrypt.Cost([]byte(passwordMgr.verified[0]))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestSanitizePath(t *testing.T) {
	router := gin.New()
	router.Use(SanitizePath())

	var path, id string
	router.GET("/api/acronyms/:id", func(c *gin.Context) {
		path = c.Request.URL.Path
		id = c.Param("id")
		c.Status(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.URL.Path = "/api/acronyms/abc<img src=x onerror=alert(1)>"
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "abc", id)
	assert.Equal(t, "/api/acronyms/abc", path)
}

func TestSanitizePathLeavesPlainParams(t *testing.T) {
	router := gin.New()
	router.Use(SanitizePath())

	var id string
	router.GET("/api/acronyms/:id", func(c *gin.Context) {
		id = c.Param("id")
		c.Status(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/acronyms/6650f1c2a3b4c5d6e7f80912", nil))

	assert.Equal(t, "6650f1c2a3b4c5d6e7f80912", id)
}
