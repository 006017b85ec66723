package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderLocation(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"18008", "AR"},
		{"18044", "FF"},
		{"22010", "40"},
		{"99999", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RenderLocation(tt.code), tt.code)
	}
}

func TestRenderLocations(t *testing.T) {
	assert.Equal(t, "AR 40", RenderLocations([]string{"18008", "123", "22010"}))
	assert.Equal(t, "", RenderLocations(nil))
}
