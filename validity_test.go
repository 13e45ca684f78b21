package prospekt_test

import (
	"testing"

	"github.com/ksiska/prospekt"
	"github.com/stretchr/testify/assert"
)

func TestParseValidity(t *testing.T) {
	t.Parallel()

	t.Run("parses a date range", func(t *testing.T) {
		t.Parallel()

		from, to := prospekt.ParseValidity("01.01.2025 - 15.01.2025")

		assert.Equal(t, "2025-01-01", from)
		assert.Equal(t, "2025-01-15", to)
	})

	t.Run("parses a range embedded in surrounding text", func(t *testing.T) {
		t.Parallel()

		from, to := prospekt.ParseValidity("Gültig 03.02.2025 - 09.02.2025 in allen Filialen")

		assert.Equal(t, "2025-02-03", from)
		assert.Equal(t, "2025-02-09", to)
	})

	t.Run("range takes precedence over single-date match", func(t *testing.T) {
		t.Parallel()

		// The single-date pattern alone would match only the first
		// token; a genuine range must resolve both sides.
		from, to := prospekt.ParseValidity("10.03.2025 - 16.03.2025")

		assert.Equal(t, "2025-03-10", from)
		assert.NotEqual(t, prospekt.Unknown, to)
		assert.Equal(t, "2025-03-16", to)
	})

	t.Run("parses a single date with von lead-in", func(t *testing.T) {
		t.Parallel()

		from, to := prospekt.ParseValidity("von Montag 03.02.2025")

		assert.Equal(t, "2025-02-03", from)
		assert.Equal(t, prospekt.Unknown, to)
	})

	t.Run("parses a bare single date", func(t *testing.T) {
		t.Parallel()

		from, to := prospekt.ParseValidity("03.02.2025")

		assert.Equal(t, "2025-02-03", from)
		assert.Equal(t, prospekt.Unknown, to)
	})

	t.Run("returns Unknown when no date is present", func(t *testing.T) {
		t.Parallel()

		from, to := prospekt.ParseValidity("Angebote diese Woche")

		assert.Equal(t, prospekt.Unknown, from)
		assert.Equal(t, prospekt.Unknown, to)
	})

	t.Run("returns Unknown for empty text", func(t *testing.T) {
		t.Parallel()

		from, to := prospekt.ParseValidity("")

		assert.Equal(t, prospekt.Unknown, from)
		assert.Equal(t, prospekt.Unknown, to)
	})

	t.Run("rejects an invalid calendar date", func(t *testing.T) {
		t.Parallel()

		from, to := prospekt.ParseValidity("32.13.2025")

		assert.Equal(t, prospekt.Unknown, from)
		assert.Equal(t, prospekt.Unknown, to)
	})

	t.Run("resolves range sides independently on invalid dates", func(t *testing.T) {
		t.Parallel()

		from, to := prospekt.ParseValidity("01.01.2025 - 32.13.2025")

		assert.Equal(t, "2025-01-01", from)
		assert.Equal(t, prospekt.Unknown, to)
	})

	t.Run("rejects February 30th", func(t *testing.T) {
		t.Parallel()

		from, to := prospekt.ParseValidity("30.02.2025")

		assert.Equal(t, prospekt.Unknown, from)
		assert.Equal(t, prospekt.Unknown, to)
	})
}
