package router

// classifierOutput is the JSON object the model is asked to return.
type classifierOutput struct {
	Unit string `json:"unit"`
	Tone string `json:"tone"`
}
