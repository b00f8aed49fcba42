package pkg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateComputerName(t *testing.T) {
	name := GenerateComputerName()

	parts := strings.Split(name, "-")
	assert.Len(t, parts, 2)
	assert.NotEmpty(t, parts[0])
	assert.NotEmpty(t, parts[1])
}
