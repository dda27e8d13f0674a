package idgen

import (
	"strings"
	"testing"
)

func TestGenerateSecureID(t *testing.T) {
	tests := []struct {
		name       string
		prefix     string
		length     int
		wantPrefix string
	}{
		{
			name:       "generate workspace ID",
			prefix:     "ws",
			length:     16,
			wantPrefix: "ws_",
		},
		{
			name:       "generate folder ID",
			prefix:     "fold",
			length:     16,
			wantPrefix: "fold_",
		},
		{
			name:       "generate video ID",
			prefix:     "vid",
			length:     16,
			wantPrefix: "vid_",
		},
		{
			name:       "generate short ID",
			prefix:     "test",
			length:     8,
			wantPrefix: "test_",
		},
		{
			name:       "generate long ID",
			prefix:     "test",
			length:     32,
			wantPrefix: "test_",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateSecureID(tt.prefix, tt.length)
			if err != nil {
				t.Fatalf("GenerateSecureID() error = %v", err)
			}
			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("GenerateSecureID() = %v, want prefix %v", got, tt.wantPrefix)
			}
			expectedLen := len(tt.prefix) + 1 + tt.length
			if len(got) != expectedLen {
				t.Errorf("GenerateSecureID() length = %v, want %v", len(got), expectedLen)
			}
			suffix := got[len(tt.prefix)+1:]
			for _, char := range suffix {
				if !((char >= 'a' && char <= 'z') || (char >= '0' && char <= '9')) {
					t.Errorf("GenerateSecureID() contains invalid character: %c", char)
				}
			}
		})
	}
}

func TestGenerateSecureID_Uniqueness(t *testing.T) {
	const iterations = 10000
	seen := make(map[string]bool)

	for i := 0; i < iterations; i++ {
		id, err := GenerateSecureID("test", 16)
		if err != nil {
			t.Fatalf("GenerateSecureID() error = %v", err)
		}
		if seen[id] {
			t.Errorf("GenerateSecureID() generated duplicate ID: %v", id)
		}
		seen[id] = true
	}
}

func TestValidateIDFormat(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		expectedPrefix string
		want           bool
	}{
		{
			name:           "valid workspace ID",
			id:             "ws_a3f8d2k9p1m4n7q2",
			expectedPrefix: "ws",
			want:           true,
		},
		{
			name:           "wrong prefix",
			id:             "ws_a3f8d2k9p1m4n7q2",
			expectedPrefix: "fold",
			want:           false,
		},
		{
			name:           "missing underscore",
			id:             "wsa3f8d2k9p1m4n7q2",
			expectedPrefix: "ws",
			want:           false,
		},
		{
			name:           "empty suffix",
			id:             "ws_",
			expectedPrefix: "ws",
			want:           false,
		},
		{
			name:           "invalid characters (uppercase)",
			id:             "ws_A3F8D2K9P1M4N7Q2",
			expectedPrefix: "ws",
			want:           false,
		},
		{
			name:           "invalid characters (special chars)",
			id:             "ws_a3f8-d2k9-p1m4",
			expectedPrefix: "ws",
			want:           false,
		},
		{
			name:           "empty ID",
			id:             "",
			expectedPrefix: "ws",
			want:           false,
		},
		{
			name:           "numbers only suffix",
			id:             "vid_123456789",
			expectedPrefix: "vid",
			want:           true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateIDFormat(tt.id, tt.expectedPrefix); got != tt.want {
				t.Errorf("ValidateIDFormat(%q, %q) = %v, want %v", tt.id, tt.expectedPrefix, got, tt.want)
			}
		})
	}
}

func TestValidateIDFormat_GeneratedIDs(t *testing.T) {
	prefixes := []string{"ws", "fold", "vid"}
	lengths := []int{8, 16, 32}

	for _, prefix := range prefixes {
		for _, length := range lengths {
			id, err := GenerateSecureID(prefix, length)
			if err != nil {
				t.Fatalf("GenerateSecureID() error = %v", err)
			}
			if !ValidateIDFormat(id, prefix) {
				t.Errorf("Generated ID %q failed validation with prefix %q", id, prefix)
			}
		}
	}
}

func BenchmarkGenerateSecureID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := GenerateSecureID("ws", 16)
		if err != nil {
			b.Fatal(err)
		}
	}
}
