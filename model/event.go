package model

const (
	QuestionTypeFreeText     = "free_text"
	QuestionTypeSingleChoice = "single_choice"
)

type TicketType struct {
	Code  string  `json:"code"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// CustomQuestion is a tagged variant: Options is meaningful only when
// Type is single_choice.
type CustomQuestion struct {
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

type EventResponse struct {
	Id              string           `json:"id"`
	SellerId        string           `json:"seller_id"`
	Slug            string           `json:"slug"`
	Title           string           `json:"title"`
	StartsAt        string           `json:"starts_at"`
	EndsAt          string           `json:"ends_at"`
	Location        string           `json:"location,omitempty"`
	TicketTypes     []TicketType     `json:"ticket_types"`
	SpotsAvailable  int              `json:"spots_available"`
	FreeRsvp        bool             `json:"free_rsvp"`
	CustomQuestions []CustomQuestion `json:"custom_questions,omitempty"`
}
