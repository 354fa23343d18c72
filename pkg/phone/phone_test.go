package phone

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"local format", "09121234567", "+989121234567", false},
		{"e164 passthrough", "+989121234567", "+989121234567", false},
		{"with country code no plus", "989121234567", "+989121234567", false},
		{"spaces", "0912 123 4567", "+989121234567", false},
		{"too short", "0912", "", true},
		{"garbage", "not-a-number", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Normalize(%q) expected error, got %q", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize(%q) error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("09121234567") {
		t.Error("expected 09121234567 to be valid")
	}
	if IsValid("12345") {
		t.Error("expected 12345 to be invalid")
	}
}
