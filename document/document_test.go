package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Outline(t *testing.T) {
	deck := []byte(`# Section One

## First Slide

content

## Second Slide

more content

# Section Two

## Third Slide

- a
- b
`)

	outline, err := Parse(deck)
	require.NoError(t, err)

	require.Len(t, outline.Headings, 5)
	assert.Equal(t, Heading{Level: 1, Title: "Section One"}, outline.Headings[0])
	assert.Equal(t, 2, outline.Headings[1].Level)
	assert.Equal(t, "First Slide", outline.Headings[1].Title)
	assert.True(t, outline.Headings[1].HasBody)
	assert.False(t, outline.Headings[0].HasBody)
}

func TestInferSlideLevel(t *testing.T) {
	tests := map[string]struct {
		deck     string
		expected int
	}{
		"empty deck": {
			deck:     "just a paragraph\n",
			expected: 0,
		},
		"flat deck": {
			deck:     "# One\n\ntext\n\n# Two\n\ntext\n",
			expected: 1,
		},
		"sectioned deck": {
			deck:     "# Section\n\n## Slide\n\ntext\n",
			expected: 2,
		},
		"content under both levels picks the shallowest": {
			deck:     "# Section\n\nintro\n\n## Slide\n\ntext\n",
			expected: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			outline, err := Parse([]byte(tt.deck))
			require.NoError(t, err)

			assert.Equal(t, tt.expected, outline.InferSlideLevel())
		})
	}
}

func TestSlideCount(t *testing.T) {
	deck := []byte("# A\n\n## S1\n\nx\n\n## S2\n\ny\n\n# B\n\n## S3\n\nz\n")

	outline, err := Parse(deck)
	require.NoError(t, err)

	assert.Equal(t, 3, outline.SlideCount(2))
	assert.Equal(t, 2, outline.SlideCount(1))
	assert.Equal(t, 3, outline.SlideCount(0))
}

func TestParse_Admonitions(t *testing.T) {
	deck := []byte(`## Slide

!!!note
    remember this

`)

	outline, err := Parse(deck)
	require.NoError(t, err)

	require.Len(t, outline.Headings, 1)
	assert.True(t, outline.Headings[0].HasBody)
}
