package voice

import "testing"

func TestParseResult(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Result
		wantErr bool
	}{
		{
			name: "plain json",
			raw:  `{"intent":"book","entities":{"service":"haircut","date":"tomorrow"},"response":"Sure, what time works?","confidence":0.92}`,
			want: Result{
				Intent:     IntentBook,
				Entities:   map[string]string{"service": "haircut", "date": "tomorrow"},
				Response:   "Sure, what time works?",
				Confidence: 0.92,
			},
		},
		{
			name: "markdown fenced json",
			raw:  "```json\n{\"intent\":\"cancel\",\"response\":\"Done.\",\"confidence\":0.8}\n```",
			want: Result{
				Intent:     IntentCancel,
				Entities:   map[string]string{},
				Response:   "Done.",
				Confidence: 0.8,
			},
		},
		{
			name: "bare fence without language tag",
			raw:  "```\n{\"intent\":\"inquiry\",\"response\":\"We open at nine.\",\"confidence\":1}\n```",
			want: Result{
				Intent:     IntentInquiry,
				Entities:   map[string]string{},
				Response:   "We open at nine.",
				Confidence: 1,
			},
		},
		{
			name: "empty response gets the fallback line",
			raw:  `{"intent":"unknown","confidence":0.1}`,
			want: Result{
				Intent:     IntentUnknown,
				Entities:   map[string]string{},
				Response:   FallbackResponse,
				Confidence: 0.1,
			},
		},
		{
			name: "out-of-range confidence clamps to zero",
			raw:  `{"intent":"book","response":"ok","confidence":3.5}`,
			want: Result{
				Intent:     IntentBook,
				Entities:   map[string]string{},
				Response:   "ok",
				Confidence: 0,
			},
		},
		{
			name:    "unrecognized intent rejected",
			raw:     `{"intent":"order_pizza","response":"?","confidence":0.9}`,
			wantErr: true,
		},
		{
			name:    "not json",
			raw:     "I'd be happy to help you book an appointment!",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResult(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseResult: %v", err)
			}

			if got.Intent != tt.want.Intent {
				t.Errorf("intent = %s, want %s", got.Intent, tt.want.Intent)
			}
			if got.Response != tt.want.Response {
				t.Errorf("response = %q, want %q", got.Response, tt.want.Response)
			}
			if got.Confidence != tt.want.Confidence {
				t.Errorf("confidence = %v, want %v", got.Confidence, tt.want.Confidence)
			}
			if len(got.Entities) != len(tt.want.Entities) {
				t.Errorf("entities = %v, want %v", got.Entities, tt.want.Entities)
			}
			for k, v := range tt.want.Entities {
				if got.Entities[k] != v {
					t.Errorf("entities[%s] = %q, want %q", k, got.Entities[k], v)
				}
			}
		})
	}
}

func TestFallback(t *testing.T) {
	f := Fallback()

	if f.Intent != IntentUnknown {
		t.Errorf("intent = %s", f.Intent)
	}
	if f.Response != FallbackResponse {
		t.Errorf("response = %q", f.Response)
	}
	if f.Confidence != 0 {
		t.Errorf("confidence = %v", f.Confidence)
	}
	if f.Entities == nil {
		t.Error("entities must be non-nil")
	}
}
