package translation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextWindow(t *testing.T) {
	pair := func(n string) ContextPair {
		return ContextPair{Original: "orig-" + n, Translated: "trans-" + n}
	}

	t.Run("Append Keeps Chronological Order", func(t *testing.T) {
		w := NewContextWindow()
		w.Append(pair("1"))
		w.Append(pair("2"))
		w.Append(pair("3"))

		assert.Equal(t, 3, w.Len())
		assert.Equal(t, []ContextPair{pair("1"), pair("2"), pair("3")}, w.Pairs())
	})

	t.Run("Prune Keeps Most Recent Pairs", func(t *testing.T) {
		w := NewContextWindow()
		for _, n := range []string{"1", "2", "3", "4", "5"} {
			w.Append(pair(n))
		}

		w.Prune(2)
		assert.Equal(t, []ContextPair{pair("4"), pair("5")}, w.Pairs())

		// 未超限时不变
		w.Prune(10)
		assert.Equal(t, 2, w.Len())
	})

	t.Run("Prune To Zero Empties Window", func(t *testing.T) {
		w := NewContextWindow()
		w.Append(pair("1"))
		w.Prune(0)
		assert.Equal(t, 0, w.Len())
	})

	t.Run("DropOldest Removes From The Front", func(t *testing.T) {
		w := NewContextWindow()
		w.Append(pair("1"))
		w.Append(pair("2"))
		w.Append(pair("3"))

		w.DropOldest(1)
		assert.Equal(t, []ContextPair{pair("2"), pair("3")}, w.Pairs())

		w.DropOldest(2)
		assert.Equal(t, 0, w.Len())
	})

	t.Run("DropOldest Is Idempotent When Empty", func(t *testing.T) {
		w := NewContextWindow()
		assert.NotPanics(t, func() {
			w.DropOldest(1)
			w.DropOldest(5)
		})
		assert.Equal(t, 0, w.Len())

		w.Append(pair("1"))
		w.DropOldest(100)
		assert.Equal(t, 0, w.Len())
		w.DropOldest(1)
		assert.Equal(t, 0, w.Len())
	})
}
