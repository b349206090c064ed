package submitsignup

import (
	"context"
	"errors"
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"signupsite/internal/core/domain/logging"
	ratelimiter "signupsite/internal/core/domain/rate_limiter"
	"signupsite/internal/core/domain/reporting"
	ds "signupsite/internal/core/domain/signup"
	signup "signupsite/internal/core/services/sign_up"
	"signupsite/internal/http/views"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type stubService struct {
	err   error
	input *signup.Input
}

func (s *stubService) Run(ctx context.Context, input signup.Input) (result signup.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	return signup.Result{Flash: []string{ds.SuccessNotice}}, nil
}

type failingViews struct{}

func (failingViews) Render(page views.Page, data interface{}) ([]byte, error) {
	return nil, errors.New("broken template")
}

type testSuite struct {
	suite.Suite
	Logger   *logging.FakeLogger
	Reporter *reporting.FakeReporter
	Views    *views.Views
	Service  *stubService
	Handler  *Handler
}

func (suite *testSuite) SetupTest() {
	v, err := views.New()
	suite.Require().Nil(err)

	suite.Logger = logging.NewFakeLogger()
	suite.Reporter = reporting.NewFakeReporter()
	suite.Views = v
	suite.Service = &stubService{}
	suite.Handler = New(suite.Logger, suite.Reporter, suite.Service, suite.Views)
}

func TestSubmitSignUpHandler(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) post(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/sign-up", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.RemoteAddr = "192.0.2.7:51234"
	rw := httptest.NewRecorder()
	suite.Handler.ServeHTTP(rw, req)
	return rw
}

func (suite *testSuite) TestSuccess() {
	rw := suite.post(url.Values{"email": {"a@b.co"}, "password": {"Abcdef12"}}.Encode())

	assert := suite.Require()
	assert.Equal(http.StatusOK, rw.Code)
	assert.Equal("text/html; charset=utf-8", rw.Header().Get("Content-Type"))
	assert.Contains(rw.Body.String(), "Signed up successfully!")
	assert.Contains(rw.Body.String(), "<title>Home | Sign-Up Sample</title>")

	assert.NotNil(suite.Service.input)
	assert.Equal(
		signup.Input{
			Submission: ds.Submission{Email: "a@b.co", Password: "Abcdef12"},
			ClientKey:  "192.0.2.7",
		},
		*suite.Service.input,
	)
}

func (suite *testSuite) TestValidationFailure() {
	messages := ds.ValidateServer(ds.Submission{Email: "bad", Password: "weak"})
	suite.Service.err = ds.NewValidationError(messages)

	rw := suite.post(url.Values{"email": {"bad"}, "password": {"weak"}}.Encode())

	assert := suite.Require()
	assert.Equal(http.StatusOK, rw.Code)
	body := html.UnescapeString(rw.Body.String())
	assert.Contains(body, "<title>Sign Up | Sign-Up Sample</title>")
	assert.Contains(body, `value="bad"`)
	assert.NotContains(body, "weak")

	errorsSection := body[strings.Index(body, `id="sign-up-errors"`):strings.Index(body, "<form")]
	positions := []int{}
	for _, text := range messages.Texts() {
		i := strings.Index(errorsSection, text)
		assert.True(i >= 0, text)
		positions = append(positions, i)
	}
	assert.IsIncreasing(positions)
}

func (suite *testSuite) TestMissingFieldsAreEmpty() {
	suite.Service.err = ds.NewValidationError(ds.ValidateServer(ds.Submission{}))

	rw := suite.post("")

	assert := suite.Require()
	assert.Equal(http.StatusOK, rw.Code)
	assert.Equal(ds.Submission{}, suite.Service.input.Submission)
}

func (suite *testSuite) TestMalformedBody() {
	rw := suite.post("email=%zz")

	assert := suite.Require()
	assert.Equal(http.StatusBadRequest, rw.Code)
	assert.Contains(rw.Body.String(), msgInvalidRequest)
	assert.Nil(suite.Service.input)
}

func (suite *testSuite) TestTooLargeBody() {
	rw := suite.post("email=" + strings.Repeat("a", maxBodyBytes+1))

	assert := suite.Require()
	assert.Equal(http.StatusBadRequest, rw.Code)
	assert.Nil(suite.Service.input)
}

func (suite *testSuite) TestRateLimitExceeded() {
	suite.Service.err = ratelimiter.ErrRateLimitExceeded

	rw := suite.post(url.Values{"email": {"a@b.co"}, "password": {"Abcdef12"}}.Encode())

	assert := suite.Require()
	assert.Equal(http.StatusTooManyRequests, rw.Code)
	assert.Contains(rw.Body.String(), msgRateLimitExceeded)
}

func (suite *testSuite) TestUnexpectedError() {
	suite.Service.err = errors.New("boom")

	rw := suite.post(url.Values{"email": {"a@b.co"}, "password": {"Abcdef12"}}.Encode())

	assert := suite.Require()
	assert.Equal(http.StatusInternalServerError, rw.Code)
	record, ok := suite.Logger.Find("Could not process sign-up submission.")
	assert.True(ok)
	assert.Equal(logging.ERROR, record.Level)
	assert.Equal([]error{suite.Service.err}, suite.Reporter.Errors)
}

func (suite *testSuite) TestRenderError() {
	suite.Handler = New(suite.Logger, suite.Reporter, suite.Service, failingViews{})

	rw := suite.post(url.Values{"email": {"a@b.co"}, "password": {"Abcdef12"}}.Encode())

	assert := suite.Require()
	assert.Equal(http.StatusInternalServerError, rw.Code)
	_, ok := suite.Logger.Find("Could not render home page.")
	assert.True(ok)
	assert.Len(suite.Reporter.Errors, 1)
}

func (suite *testSuite) TestRenderFormError() {
	suite.Service.err = ds.NewValidationError(ds.ValidateServer(ds.Submission{}))
	suite.Handler = New(suite.Logger, suite.Reporter, suite.Service, failingViews{})

	rw := suite.post("")

	assert := suite.Require()
	assert.Equal(http.StatusInternalServerError, rw.Code)
	_, ok := suite.Logger.Find("Could not render sign-up page.")
	assert.True(ok)
	assert.Len(suite.Reporter.Errors, 1)
}

func (suite *testSuite) TestExpectedFailuresAreNotReported() {
	suite.Service.err = ratelimiter.ErrRateLimitExceeded
	suite.post(url.Values{"email": {"a@b.co"}}.Encode())

	suite.Service.err = ds.NewValidationError(ds.ValidateServer(ds.Submission{}))
	suite.post("")

	suite.post("email=%zz")

	suite.Require().Empty(suite.Reporter.Errors)
}

func TestClientKey(t *testing.T) {
	cases := []struct {
		remoteAddr string
		expected   string
	}{
		{remoteAddr: "192.0.2.7:51234", expected: "192.0.2.7"},
		{remoteAddr: "[2001:db8::1]:443", expected: "2001:db8::1"},
		{remoteAddr: "192.0.2.7", expected: "192.0.2.7"},
	}
	for _, testcase := range cases {
		t.Run(testcase.remoteAddr, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/sign-up", nil)
			req.RemoteAddr = testcase.remoteAddr
			require.Equal(t, testcase.expected, clientKey(req))
		})
	}
}
