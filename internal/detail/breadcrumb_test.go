package detail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"team_suite", "Team Suite"},
		{"sample_data.ecommerce_db.shopify.dim_address", "Sample Data Ecommerce Db Shopify Dim Address"},
		{"critical-metrics", "Critical Metrics"},
		{"customerOrders", "Customer Orders"},
		{"HTMLParser", "Html Parser"},
		{"suite2go", "Suite 2 Go"},
		{"  already Spaced  ", "Already Spaced"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StartCase(tt.in))
		})
	}
}

func TestBreadcrumb(t *testing.T) {
	t.Run("fully qualified name wins", func(t *testing.T) {
		got := Breadcrumb("sample_data.suite", "suite")
		assert.Equal(t, []BreadcrumbLink{
			{Name: "Test Suites", URL: "/settings/data-quality/test-suites"},
			{Name: "Sample Data Suite", URL: ""},
		}, got)
	})

	t.Run("falls back to name", func(t *testing.T) {
		got := Breadcrumb("", "nightly_checks")
		assert.Equal(t, "Nightly Checks", got[1].Name)
	})
}
