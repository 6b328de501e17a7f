package voice

import (
	"encoding/json"
	"errors"
	"strings"
)

const (
	IntentBook       = "book"
	IntentReschedule = "reschedule"
	IntentCancel     = "cancel"
	IntentInquiry    = "inquiry"
	IntentUnknown    = "unknown"
)

// FallbackResponse keeps the call flowing when the model is unreachable or
// answers garbage.
const FallbackResponse = "I'm sorry, I couldn't quite catch that. " +
	"Could you repeat, or book online through our website?"

type Result struct {
	Intent     string            `json:"intent"`
	Entities   map[string]string `json:"entities"`
	Response   string            `json:"response"`
	Confidence float64           `json:"confidence"`
}

func Fallback() Result {
	return Result{
		Intent:     IntentUnknown,
		Entities:   map[string]string{},
		Response:   FallbackResponse,
		Confidence: 0,
	}
}

// ParseResult decodes the model's JSON reply. Models occasionally wrap JSON
// in a markdown code fence; strip it before decoding.
func ParseResult(raw string) (Result, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var res Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return Result{}, err
	}

	switch res.Intent {
	case IntentBook, IntentReschedule, IntentCancel, IntentInquiry, IntentUnknown:
	default:
		return Result{}, errors.New("voice: unrecognized intent " + res.Intent)
	}

	if res.Entities == nil {
		res.Entities = map[string]string{}
	}
	if res.Response == "" {
		res.Response = FallbackResponse
	}
	if res.Confidence < 0 || res.Confidence > 1 {
		res.Confidence = 0
	}

	return res, nil
}
