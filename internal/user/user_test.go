package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperator_EnvOverride(t *testing.T) {
	t.Setenv("UGCCTL_USER", "  cine-admin ")
	assert.Equal(t, "cine-admin", Operator())
}

func TestOperator_NeverEmpty(t *testing.T) {
	t.Setenv("UGCCTL_USER", "")
	assert.NotEmpty(t, Operator())
}
