package dto_test

import (
	"net/url"
	"testing"

	"github.com/bionicotaku/lingo-services-greeter/internal/controllers/dto"
	"github.com/bionicotaku/lingo-services-greeter/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGreetingID(t *testing.T) {
	t.Run("valid uuid", func(t *testing.T) {
		want := uuid.New()
		got, err := dto.ParseGreetingID(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("invalid uuid", func(t *testing.T) {
		got, err := dto.ParseGreetingID("not-a-uuid")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid greeting_id")
		assert.Equal(t, uuid.Nil, got)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := dto.ParseGreetingID("")
		assert.Error(t, err)
	})
}

func TestToListGreetingsInput(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		input, err := dto.ToListGreetingsInput(url.Values{})
		require.NoError(t, err)
		assert.Nil(t, input.Suffix)
		assert.Zero(t, input.Limit)
	})

	t.Run("suffix filter", func(t *testing.T) {
		query := url.Values{}
		query.Set("suffix", "A test string")
		input, err := dto.ToListGreetingsInput(query)
		require.NoError(t, err)
		require.NotNil(t, input.Suffix)
		assert.Equal(t, "A test string", *input.Suffix)
	})

	t.Run("empty suffix still filters", func(t *testing.T) {
		query := url.Values{}
		query.Set("suffix", "")
		input, err := dto.ToListGreetingsInput(query)
		require.NoError(t, err)
		require.NotNil(t, input.Suffix)
		assert.Equal(t, "", *input.Suffix)
	})

	t.Run("limit", func(t *testing.T) {
		query := url.Values{}
		query.Set("limit", "25")
		input, err := dto.ToListGreetingsInput(query)
		require.NoError(t, err)
		assert.Equal(t, 25, input.Limit)
	})

	t.Run("invalid limit", func(t *testing.T) {
		query := url.Values{}
		query.Set("limit", "abc")
		input, err := dto.ToListGreetingsInput(query)
		assert.Error(t, err)
		assert.Equal(t, services.ListGreetingsInput{}, input)
	})

	t.Run("negative limit", func(t *testing.T) {
		query := url.Values{}
		query.Set("limit", "-1")
		_, err := dto.ToListGreetingsInput(query)
		assert.Error(t, err)
	})
}
