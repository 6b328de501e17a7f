package validators

import "testing"

func TestIsEmailShape(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"dana@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"not-an-email", false},
		{"@example.com", false},
		{"dana@", false},
		{"", false},
		{"Dana Reyes <dana@example.com>", false},
	}

	for _, tt := range tests {
		if got := IsEmailShape(tt.email); got != tt.want {
			t.Errorf("IsEmailShape(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestIsPhoneShape(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+15551234567", true},
		{"555-123-4567", true},
		{"(555) 123.4567", true},
		{"1234567", true},
		{"123456", false},
		{"1234567890123456", false},
		{"555-CALL-NOW", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsPhoneShape(tt.phone); got != tt.want {
			t.Errorf("IsPhoneShape(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}
