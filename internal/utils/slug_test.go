package utils_test

import (
	"testing"

	"github.com/orghub/org_management_app/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Laporan Keuangan Q1/2025": "laporan-keuangan-q1-2025",
		"  Hello   World  ":        "hello-world",
		"Already-slugged":          "already-slugged",
		"!!!":                      "",
	}
	for in, want := range cases {
		assert.Equal(t, want, utils.Slugify(in), in)
	}
}
