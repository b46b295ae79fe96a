package checkout

import (
	"booking-checkout/model"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

type ValidateTestSuite struct {
	suite.Suite

	validate *validator.Validate
}

func (s *ValidateTestSuite) SetupTest() {
	s.validate = validator.New()
}

func TestValidateTestSuite(t *testing.T) {
	suite.Run(t, new(ValidateTestSuite))
}

func validAttendee() model.AttendeeFormData {
	return model.AttendeeFormData{
		Name:          "Asha Rao",
		Email:         "asha@example.com",
		Phone:         "+919812345678",
		CustomAnswers: map[string]string{},
	}
}

func (s *ValidateTestSuite) TestValidAttendeesPass() {
	errs := ValidateAttendees(s.validate, []model.AttendeeFormData{validAttendee(), validAttendee()}, nil)
	s.Nil(errs)
}

func (s *ValidateTestSuite) TestFieldErrorsKeyedBySlot() {
	bad := validAttendee()
	bad.Email = "not-an-email"

	errs := ValidateAttendees(s.validate, []model.AttendeeFormData{validAttendee(), bad}, nil)

	s.Len(errs, 1)
	s.Equal("email", errs[1]["Email"])
}

func (s *ValidateTestSuite) TestMissingRequiredFields() {
	errs := ValidateAttendees(s.validate, []model.AttendeeFormData{{}}, nil)

	s.Equal("required", errs[0]["Name"])
	s.Equal("required", errs[0]["Email"])
	s.Equal("required", errs[0]["Phone"])
}

func (s *ValidateTestSuite) TestCustomQuestions() {
	questions := []model.CustomQuestion{
		{Label: "T-shirt size", Type: model.QuestionTypeSingleChoice, Required: true, Options: []string{"S", "M", "L"}},
		{Label: "Dietary notes", Type: model.QuestionTypeFreeText, Required: false},
	}

	tests := []struct {
		name     string
		answers  map[string]string
		expected map[string]string
	}{
		{
			name:     "all answered",
			answers:  map[string]string{"T-shirt size": "M", "Dietary notes": "none"},
			expected: nil,
		},
		{
			name:     "optional question may stay empty",
			answers:  map[string]string{"T-shirt size": "L"},
			expected: nil,
		},
		{
			name:     "required question missing",
			answers:  map[string]string{"Dietary notes": "vegan"},
			expected: map[string]string{"T-shirt size": "required"},
		},
		{
			name:     "choice outside the options",
			answers:  map[string]string{"T-shirt size": "XXL"},
			expected: map[string]string{"T-shirt size": "not an option"},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			attendee := validAttendee()
			attendee.CustomAnswers = tc.answers

			errs := ValidateAttendees(s.validate, []model.AttendeeFormData{attendee}, questions)
			if tc.expected == nil {
				s.Nil(errs)
			} else {
				s.Equal(tc.expected, errs[0])
			}
		})
	}
}
