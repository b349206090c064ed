package signup

import (
	"context"
	"errors"
	"signupsite/internal/core/domain/logging"
	ds "signupsite/internal/core/domain/signup"
	"signupsite/internal/core/services"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	Logger  *logging.FakeLogger
	Service services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Service = New(suite.Logger)
}

func TestSignUpService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	result, err := suite.Service.Run(
		context.Background(),
		Input{Submission: ds.Submission{Email: "a@b.co", Password: "Abcdef12"}},
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal([]string{"Signed up successfully!"}, result.Flash)
	_, ok := suite.Logger.Find("Sign-up submission accepted.")
	assert.True(ok)
}

func (suite *testSuite) TestValidationFailure() {
	result, err := suite.Service.Run(
		context.Background(),
		Input{Submission: ds.Submission{Email: "bad", Password: "weak"}},
	)

	assert := suite.Require()
	assert.NotNil(err)
	assert.Empty(result.Flash)

	var validationErr *ds.ValidationError
	assert.True(errors.As(err, &validationErr))
	assert.Equal([]string{
		"'bad' is an invalid email address",
		ds.MsgPasswordUpper,
		ds.MsgPasswordDigit,
		ds.MsgPasswordTooShort,
	}, validationErr.Messages.Texts())

	record, ok := suite.Logger.Find("Sign-up submission rejected.")
	assert.True(ok)
	assert.Equal(logging.INFO, record.Level)
	for _, entry := range record.Entries {
		assert.NotEqual("password", entry.Key)
	}
}

func (suite *testSuite) TestRetryIsIdempotent() {
	input := Input{Submission: ds.Submission{Email: "a@b.co", Password: "Ab1"}}

	_, firstErr := suite.Service.Run(context.Background(), input)
	_, secondErr := suite.Service.Run(context.Background(), input)

	assert := suite.Require()
	assert.Equal(firstErr, secondErr)
}

func (suite *testSuite) TestNilLogger() {
	suite.Require().Panics(func() { New(nil) })
}

func (suite *testSuite) TestRateLimitKey() {
	suite.Require().Equal("sign-up::10.0.0.1", Input{ClientKey: "10.0.0.1"}.GetRateLimitKey())
}
