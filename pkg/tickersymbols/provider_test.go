package tickersymbols

import "testing"

func TestParseProvider(t *testing.T) {
	tests := []struct {
		in      string
		want    Provider
		wantErr bool
	}{
		{"yahoo", Yahoo, false},
		{" Google ", Google, false},
		{"YAHOO", Yahoo, false},
		{"bloomberg", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseProvider(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseProvider(%q) error = %v", tt.in, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseProvider(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if Yahoo.String() != "yahoo" || Google.String() != "google" {
		t.Errorf("String() = %s, %s", Yahoo, Google)
	}
}
