package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRounding(t *testing.T) {
	cases := []struct {
		name       string
		from, size int
		page       int
		offset     int
	}{
		{"first page", 0, 10, 0, 0},
		{"exact boundary", 10, 10, 1, 10},
		{"mid-page offset rounds down", 13, 5, 2, 10},
		{"last row of a page", 9, 5, 1, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := PageParams{From: tc.from, Size: tc.size}

			page, err := p.Page()
			require.NoError(t, err)
			assert.Equal(t, tc.page, page)

			offset, err := p.Offset()
			require.NoError(t, err)
			assert.Equal(t, tc.offset, offset)
		})
	}
}

func TestPageInvalidParams(t *testing.T) {
	_, err := PageParams{From: -1, Size: 10}.Page()
	assert.ErrorIs(t, err, ErrInvalidPage)

	_, err = PageParams{From: 0, Size: 0}.Page()
	assert.ErrorIs(t, err, ErrInvalidPage)

	_, err = PageParams{From: 5, Size: -2}.Offset()
	assert.ErrorIs(t, err, ErrInvalidPage)
}
