package usecase

// webhookPayload is the JSON body posted to the outbound webhook.
type webhookPayload struct {
	StudentName  string  `json:"Student Name"`
	AcademicYear string  `json:"Academic Year"`
	StudentQuery string  `json:"Student Query"`
	Unit         string  `json:"unit"`
	Tone         *string `json:"tone"`
}
