package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fileConfig struct {
	level   int
	comment string
	strict  bool
}

func (c *fileConfig) setLevel(v int) error {
	if v < 0 {
		return errors.New("level cannot be negative")
	}
	c.level = v

	return nil
}

func TestNew(t *testing.T) {
	t.Run("applies the wrapped function", func(t *testing.T) {
		cfg := &fileConfig{}
		opt := New(func(c *fileConfig) error {
			return c.setLevel(3)
		})

		require.NoError(t, opt.apply(cfg))
		require.Equal(t, 3, cfg.level)
	})

	t.Run("propagates errors", func(t *testing.T) {
		cfg := &fileConfig{}
		opt := New(func(c *fileConfig) error {
			return c.setLevel(-1)
		})

		err := opt.apply(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "cannot be negative")
	})
}

func TestNoError(t *testing.T) {
	cfg := &fileConfig{}
	opt := NoError(func(c *fileConfig) {
		c.strict = true
	})

	require.NoError(t, opt.apply(cfg))
	require.True(t, cfg.strict)
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &fileConfig{}
		err := Apply(cfg,
			New(func(c *fileConfig) error { return c.setLevel(7) }),
			NoError(func(c *fileConfig) { c.comment = "scene" }),
			NoError(func(c *fileConfig) { c.strict = true }),
		)

		require.NoError(t, err)
		require.Equal(t, 7, cfg.level)
		require.Equal(t, "scene", cfg.comment)
		require.True(t, cfg.strict)
	})

	t.Run("stops at the first error", func(t *testing.T) {
		cfg := &fileConfig{}
		err := Apply(cfg,
			New(func(c *fileConfig) error { return c.setLevel(2) }),
			New(func(c *fileConfig) error { return c.setLevel(-1) }),
			NoError(func(c *fileConfig) { c.comment = "unreached" }),
		)

		require.Error(t, err)
		require.Equal(t, 2, cfg.level)
		require.Empty(t, cfg.comment)
	})

	t.Run("accepts zero options", func(t *testing.T) {
		cfg := &fileConfig{}
		require.NoError(t, Apply(cfg))
		require.Equal(t, fileConfig{}, *cfg)
	})
}

// The exported packages expose options through WithXxx constructors; make
// sure that shape composes.
func TestWithConstructors(t *testing.T) {
	withLevel := func(v int) Option[*fileConfig] {
		return New(func(c *fileConfig) error { return c.setLevel(v) })
	}
	withComment := func(s string) Option[*fileConfig] {
		return NoError(func(c *fileConfig) { c.comment = s })
	}

	cfg := &fileConfig{}
	require.NoError(t, Apply(cfg, withLevel(9), withComment("export")))
	require.Equal(t, 9, cfg.level)
	require.Equal(t, "export", cfg.comment)
}

func TestGenericTargets(t *testing.T) {
	var n int
	opt := NoError(func(p *int) { *p = 42 })

	require.NoError(t, opt.apply(&n))
	require.Equal(t, 42, n)
}
