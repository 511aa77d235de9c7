package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gstdesk/internal/gst"
)

func TestResolveType(t *testing.T) {
	tests := []struct {
		name   string
		seller string
		buyer  string
		want   gst.GSTType
	}{
		{"same_state", "Karnataka", "Karnataka", gst.Intrastate},
		{"different_state", "Karnataka", "Maharashtra", gst.Interstate},
		{"case_insensitive", "karnataka", "KARNATAKA", gst.Intrastate},
		{"whitespace_trimmed", "  Karnataka ", "Karnataka", gst.Intrastate},
		{"whitespace_and_case", " delhi", "DELHI ", gst.Intrastate},
		{"seller_missing", "", "Karnataka", ""},
		{"buyer_missing", "Karnataka", "", ""},
		{"both_missing", "", "", ""},
		{"whitespace_only_is_missing", "   ", "Karnataka", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gst.ResolveType(tt.seller, tt.buyer))
		})
	}
}

func TestResolveType_Pure(t *testing.T) {
	// Same inputs, same output, no matter how often it runs.
	for i := 0; i < 3; i++ {
		assert.Equal(t, gst.Interstate, gst.ResolveType("Tamil Nadu", "Kerala"))
	}
}
