package translation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmenter(t *testing.T) {
	s := NewSegmenter(wordCounter{})

	t.Run("Empty Input", func(t *testing.T) {
		assert.Empty(t, s.Segment(nil, 10))
		assert.Empty(t, s.Segment([]string{"", "   ", "\t"}, 10))
	})

	t.Run("Blank Paragraphs Skipped", func(t *testing.T) {
		chunks := s.Segment([]string{"A", "", "B"}, 100)
		assert.Equal(t, []string{"A\nB"}, chunks)
	})

	t.Run("Flush On Overflow", func(t *testing.T) {
		paragraphs := []string{
			"one two three",
			"four five six",
			"seven eight nine",
		}
		chunks := s.Segment(paragraphs, 3)
		assert.Equal(t, []string{"one two three", "four five six", "seven eight nine"}, chunks)
	})

	t.Run("Packs Adjacent Paragraphs Under Ceiling", func(t *testing.T) {
		paragraphs := []string{
			"one two three",
			"four five six",
			"seven eight nine",
		}
		chunks := s.Segment(paragraphs, 6)
		assert.Equal(t, []string{"one two three\nfour five six", "seven eight nine"}, chunks)
	})

	t.Run("Oversized Paragraph Becomes Own Chunk", func(t *testing.T) {
		big := "w1 w2 w3 w4 w5 w6 w7 w8 w9 w10"
		chunks := s.Segment([]string{"small one", big, "tiny"}, 5)

		assert.Contains(t, chunks, big)
		counter := wordCounter{}
		for _, chunk := range chunks {
			if chunk == big {
				continue
			}
			assert.LessOrEqual(t, counter.Count(chunk), 5)
		}
	})

	t.Run("Order Preservation", func(t *testing.T) {
		paragraphs := []string{"p1 a", "", "p2 b c", "p3", "p4 d e f", "  ", "p5"}
		chunks := s.Segment(paragraphs, 4)

		var nonEmpty []string
		for _, p := range paragraphs {
			if strings.TrimSpace(p) != "" {
				nonEmpty = append(nonEmpty, p)
			}
		}
		assert.Equal(t, strings.Join(nonEmpty, "\n"), strings.Join(chunks, "\n"))
	})
}
