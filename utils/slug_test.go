package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Quỹ Từ Thiện", "quy-tu-thien"},
		{"  Cộng Tác Viên 01  ", "cong-tac-vien-01"},
		{"already-a-slug", "already-a-slug"},
		{"Dev/Ops Fund!!", "dev-ops-fund"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), tt.in)
	}
}
