package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/lifesim-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "relationship not found",
			expected: "NOT_FOUND: relationship not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid choice index",
			expected: "INVALID_ARGUMENT: invalid choice index",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "not awaiting a choice",
			expected: "FAILED_PRECONDITION: not awaiting a choice",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("no eligible event").
		WithMeta("year", 12).
		WithMeta("life_id", "life_1")

	s.Assert().Equal(12, err.Meta["year"])
	s.Assert().Equal("life_1", err.Meta["life_id"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("redis connection failed")
	wrapped := errors.Wrap(baseErr, "failed to load counters")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to load counters", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.NotFound("event not found")
	wrapped := errors.Wrap(base, "failed to resolve choice")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	base := fmt.Errorf("context deadline exceeded")
	wrapped := errors.WrapWithCode(base, errors.CodeUnavailable, "counter service unreachable")

	s.Assert().Equal(errors.CodeUnavailable, wrapped.Code)
	s.Assert().True(errors.IsUnavailable(wrapped))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(errors.NotFound("missing")))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain error")))
}

func (s *ErrorsTestSuite) TestTypeCheckers() {
	s.Assert().True(errors.IsNotFound(errors.NotFound("missing")))
	s.Assert().False(errors.IsNotFound(errors.Internal("boom")))
	s.Assert().True(errors.IsFailedPrecondition(errors.FailedPrecondition("bad state")))
	s.Assert().True(errors.IsInvalidArgument(errors.InvalidArgumentf("bad index %d", 9)))
	s.Assert().True(errors.IsUnavailable(errors.Unavailable("no receiver")))
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("Catalog")
	vb.Fieldf("Seed", "must be positive, got %d", -1)

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "Catalog")
}

func (s *ErrorsTestSuite) TestValidationBuilderEmpty() {
	s.Assert().NoError(errors.NewValidationBuilder().Build())
}
