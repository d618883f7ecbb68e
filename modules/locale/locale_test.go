package locale

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParse(t *testing.T) {
	Init("hu", []string{"hu", "en"})

	l, err := Parse("hu")
	require.NoError(t, err)
	assert.Equal(t, Locale("hu"), l)

	l, err = Parse(" EN ")
	require.NoError(t, err)
	assert.Equal(t, Locale("en"), l)

	_, err = Parse("de")
	assert.Equal(t, ErrUnsupportedLocale, errors.Cause(err))

	_, err = Parse("")
	assert.Equal(t, ErrUnsupportedLocale, errors.Cause(err))
}

func TestInitAddsDefault(t *testing.T) {
	defer Init("hu", []string{"hu", "en"})

	Init("DE", []string{"en", "en", ""})
	assert.Equal(t, Locale("de"), Default())
	assert.Equal(t, []Locale{"en", "de"}, Supported())

	Init("", nil)
	assert.Equal(t, Locale("hu"), Default())
	assert.Equal(t, []Locale{"hu"}, Supported())
}
