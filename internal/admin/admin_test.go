package admin_test

import (
	"testing"

	"github.com/nrrc/shuttleboard/internal/admin"
	"github.com/stretchr/testify/assert"
)

func TestVerify(t *testing.T) {
	v := admin.New("2727")

	assert.True(t, v.Verify("2727"))
	assert.False(t, v.Verify("0000"))
	assert.False(t, v.Verify(""))
	assert.False(t, v.Verify("27270"))
}

func TestVerifyUnsetPINMatchesNothing(t *testing.T) {
	v := admin.New("")
	assert.False(t, v.Verify(""))
	assert.False(t, v.Verify("anything"))
}
