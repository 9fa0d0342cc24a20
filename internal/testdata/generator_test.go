package testdata

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/hanzicards/internal/catalog"
)

func TestCatalogShape(t *testing.T) {
	c := Catalog(3, 9, 5)
	require.Equal(t, 9, c.Len())
	require.Equal(t, "คำทักทาย", c.Lessons[0].Title)
	require.Equal(t, "คำทักทาย 2", c.Lessons[7].Title)

	for i, l := range c.Lessons {
		require.Equal(t, i+1, l.ID)
		require.Len(t, l.Vocab, 5)
		require.Len(t, catalog.DistinctTranslations(l.Vocab), 5)
	}
	require.Empty(t, catalog.Validate(c))
}

func TestCatalogIsSeeded(t *testing.T) {
	require.Equal(t, Catalog(11, 3, 4), Catalog(11, 3, 4))
	require.Len(t, Catalog(1, 1, 1000).Lessons[0].Vocab, len(words))
}
