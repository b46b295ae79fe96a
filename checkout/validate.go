package checkout

import (
	"booking-checkout/model"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// SlotErrors maps slot index to field-level validation messages.
type SlotErrors map[int]map[string]string

// ValidateAttendees runs every slot's form through struct validation
// and the event's custom question rules, all slots in parallel. Nothing
// here ever reaches the backend.
func ValidateAttendees(validate *validator.Validate, attendees []model.AttendeeFormData, questions []model.CustomQuestion) SlotErrors {
	results := make([]map[string]string, len(attendees))

	var wg sync.WaitGroup
	for i := range attendees {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = validateAttendee(validate, attendees[i], questions)
		}(i)
	}
	wg.Wait()

	slotErrors := SlotErrors{}
	for i, fields := range results {
		if len(fields) > 0 {
			slotErrors[i] = fields
		}
	}

	if len(slotErrors) == 0 {
		return nil
	}
	return slotErrors
}

func validateAttendee(validate *validator.Validate, form model.AttendeeFormData, questions []model.CustomQuestion) map[string]string {
	fields := map[string]string{}

	if err := validate.Struct(form); err != nil {
		if validationErr, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range validationErr {
				fields[fieldErr.Field()] = fieldErr.Tag()
			}
		} else {
			fields["form"] = "invalid"
		}
	}

	for _, q := range questions {
		answer := strings.TrimSpace(form.CustomAnswers[q.Label])

		if answer == "" {
			if q.Required {
				fields[q.Label] = "required"
			}
			continue
		}

		if q.Type == model.QuestionTypeSingleChoice && !containsOption(q.Options, answer) {
			fields[q.Label] = "not an option"
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

func containsOption(options []string, answer string) bool {
	for _, opt := range options {
		if opt == answer {
			return true
		}
	}
	return false
}
