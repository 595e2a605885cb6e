package protocol

import "testing"

func TestChecksum(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected byte
	}{
		{
			name:     "empty data",
			data:     []byte{},
			expected: 0x00,
		},
		{
			name:     "single byte",
			data:     []byte{0x07},
			expected: 0x07,
		},
		{
			name:     "overflow wraps",
			data:     []byte{0xFF, 0x01},
			expected: 0x00,
		},
		{
			name:     "all ones",
			data:     []byte{0xFF, 0xFF, 0xFF, 0xFF},
			expected: 0xFC,
		},
		{
			name:     "firmware reply region",
			data:     []byte{0x07, 0x0F, 0x07, 0x0A, 0xA1, 0x60},
			expected: 0x28,
		},
		{
			name:     "measurement reply region",
			data:     []byte{0xD4, 0x04, 0x3A, 0x0A, 0xA1, 0x60},
			expected: 0x1D,
		},
		{
			name: "broadcast measurement query region",
			data: []byte{
				0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x00, 0x00, 0x00, 0x00, 0x00, 0xFF, 0xFF,
			},
			expected: 0x02,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Checksum(tt.data)
			if result != tt.expected {
				t.Errorf("Checksum() = 0x%02X, want 0x%02X", result, tt.expected)
			}
		})
	}
}
