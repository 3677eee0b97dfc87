package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// readerConfig mirrors the shape of the codec's option targets: a couple of
// string settings with defaults, one of which is validated.
type readerConfig struct {
	naming   string
	valueKey string
}

func withNaming(naming string) Option[*readerConfig] {
	return New(func(c *readerConfig) error {
		if naming != "label" && naming != "id" {
			return errors.New("invalid naming mode: " + naming)
		}
		c.naming = naming

		return nil
	})
}

func withValueKey(key string) Option[*readerConfig] {
	return NoError(func(c *readerConfig) {
		c.valueKey = key
	})
}

func TestNew(t *testing.T) {
	t.Run("applies validated setter", func(t *testing.T) {
		cfg := &readerConfig{naming: "label"}
		require.NoError(t, withNaming("id").apply(cfg))
		require.Equal(t, "id", cfg.naming)
	})

	t.Run("surfaces validation failure", func(t *testing.T) {
		cfg := &readerConfig{naming: "label"}
		err := withNaming("uuid").apply(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid naming mode")
		require.Equal(t, "label", cfg.naming)
	})
}

func TestNoError(t *testing.T) {
	cfg := &readerConfig{valueKey: "value"}
	require.NoError(t, withValueKey("status").apply(cfg))
	require.Equal(t, "status", cfg.valueKey)
}

func TestApply(t *testing.T) {
	t.Run("applies options in order over defaults", func(t *testing.T) {
		cfg := &readerConfig{naming: "label", valueKey: "value"}
		err := Apply(cfg, withValueKey("status"), withNaming("id"), withNaming("label"))
		require.NoError(t, err)
		require.Equal(t, "label", cfg.naming)
		require.Equal(t, "status", cfg.valueKey)
	})

	t.Run("stops at the first failing option", func(t *testing.T) {
		cfg := &readerConfig{naming: "label", valueKey: "value"}
		err := Apply(cfg, withNaming("id"), withNaming("bogus"), withValueKey("status"))
		require.Error(t, err)
		require.Equal(t, "id", cfg.naming)
		require.Equal(t, "value", cfg.valueKey)
	})

	t.Run("no options leaves defaults intact", func(t *testing.T) {
		cfg := &readerConfig{naming: "label", valueKey: "value"}
		require.NoError(t, Apply(cfg))
		require.Equal(t, "label", cfg.naming)
		require.Equal(t, "value", cfg.valueKey)
	})
}
