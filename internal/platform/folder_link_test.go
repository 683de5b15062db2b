package platform

import "testing"

func TestExtractFolderID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "bare id",
			input:    "1AbCdEf_gh-IJ",
			expected: "1AbCdEf_gh-IJ",
		},
		{
			name:     "bare id with whitespace",
			input:    "  1AbC\n",
			expected: "1AbC",
		},
		{
			name:     "folders URL",
			input:    "https://drive.google.com/drive/folders/1AbCdEf_gh-IJ",
			expected: "1AbCdEf_gh-IJ",
		},
		{
			name:     "folders URL with query and trailing slash",
			input:    "https://drive.google.com/drive/folders/1AbC?usp=sharing/",
			expected: "1AbC",
		},
		{
			name:     "multi-account URL",
			input:    "https://drive.google.com/drive/u/1/folders/XyZ123",
			expected: "XyZ123",
		},
		{
			name:     "legacy open URL",
			input:    "https://drive.google.com/open?id=Legacy_1",
			expected: "Legacy_1",
		},
		{
			name:    "empty",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "invalid characters",
			input:   "abc/def*",
			wantErr: true,
		},
		{
			name:    "foreign host",
			input:   "https://example.com/drive/folders/abc",
			wantErr: true,
		},
		{
			name:    "drive URL without id",
			input:   "https://drive.google.com/drive/my-drive",
			wantErr: true,
		},
		{
			name:    "unsupported scheme",
			input:   "ftp://drive.google.com/drive/folders/abc",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractFolderID(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got id %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
