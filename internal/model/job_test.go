package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidVehicleNumber(t *testing.T) {
	t.Parallel()

	for n, want := range map[string]bool{
		"MH14fu1234":  true,
		"KA01ab0001":  true,
		"MH14FU1234":  false,
		"mh14fu1234":  false,
		"MH1fu1234":   false,
		"MH14fu12345": false,
		"":            false,
	} {
		assert.Equal(t, want, ValidVehicleNumber(n), n)
	}
}

func TestPage_HasNext(t *testing.T) {
	t.Parallel()

	assert.True(t, Page[Review]{Total: 5, Page: 1, PageSize: 2}.HasNext())
	assert.True(t, Page[Review]{Total: 5, Page: 2, PageSize: 2}.HasNext())
	assert.False(t, Page[Review]{Total: 5, Page: 3, PageSize: 2}.HasNext())
	assert.False(t, Page[Review]{Total: 0, Page: 1, PageSize: 2}.HasNext())
}
