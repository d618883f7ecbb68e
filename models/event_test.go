package models

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestEventValidate(t *testing.T) {
	cases := []struct {
		slug string
		ok   bool
	}{
		{"budapest-2026", true},
		{"v1.2_final~x", true},
		{"", false},
		{"../admin", false},
		{"a/b", false},
		{"with space", false},
		{"-leading", false},
	}
	for _, c := range cases {
		err := (&Event{Slug: c.slug}).Validate()
		if c.ok {
			assert.NoError(t, err, c.slug)
		} else {
			assert.Equal(t, ErrInvalidEvent, errors.Cause(err), c.slug)
		}
	}
}
