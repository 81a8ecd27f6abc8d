package construction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIDData(t *testing.T) {
	t.Run("uneven assignment favors low firm ids", func(t *testing.T) {
		frame, err := BuildIDData(2, 5, 4)
		require.NoError(t, err)

		require.Equal(t, 10, frame.Len())
		assert.Equal(t, 1, frame.FirmColumns())

		var markets, firms []string
		for i := 0; i < frame.Len(); i++ {
			markets = append(markets, frame.MarketID(i))
			firms = append(firms, frame.FirmID(i))
		}
		assert.Equal(t, []string{"0", "0", "0", "0", "0", "1", "1", "1", "1", "1"}, markets)
		assert.Equal(t, []string{"0", "0", "1", "2", "3", "0", "0", "1", "2", "3"}, firms)
	})

	t.Run("even assignment splits equally", func(t *testing.T) {
		frame, err := BuildIDData(1, 6, 3)
		require.NoError(t, err)

		var firms []string
		for i := 0; i < frame.Len(); i++ {
			firms = append(firms, frame.FirmID(i))
		}
		assert.Equal(t, []string{"0", "0", "1", "1", "2", "2"}, firms)
	})

	t.Run("merger adds a firm column", func(t *testing.T) {
		frame, err := BuildIDData(1, 5, 4, map[int]int{2: 0})
		require.NoError(t, err)
		require.Equal(t, 2, frame.FirmColumns())

		merged, err := frame.SelectFirms(1)
		require.NoError(t, err)

		var original, changed []string
		for i := 0; i < frame.Len(); i++ {
			original = append(original, frame.FirmID(i))
			changed = append(changed, merged.FirmID(i))
		}
		assert.Equal(t, []string{"0", "0", "1", "2", "3"}, original)
		assert.Equal(t, []string{"0", "0", "1", "0", "3"}, changed)
	})

	t.Run("several mergers add several columns", func(t *testing.T) {
		frame, err := BuildIDData(1, 4, 4, map[int]int{3: 2}, map[int]int{1: 0, 3: 0})
		require.NoError(t, err)
		require.Equal(t, 3, frame.FirmColumns())

		second, err := frame.SelectFirms(2)
		require.NoError(t, err)
		var firms []string
		for i := 0; i < frame.Len(); i++ {
			firms = append(firms, second.FirmID(i))
		}
		assert.Equal(t, []string{"0", "0", "2", "0"}, firms)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := BuildIDData(0, 5, 4)
		assert.ErrorContains(t, err, "at least one market and one firm")

		_, err = BuildIDData(2, 5, 0)
		assert.ErrorContains(t, err, "at least one market and one firm")

		_, err = BuildIDData(2, 3, 4)
		assert.ErrorContains(t, err, "3 products per market cannot cover 4 firms")

		_, err = BuildIDData(2, 5, 4, map[int]int{4: 0})
		assert.ErrorContains(t, err, "merger maps firm 4 to 0")

		_, err = BuildIDData(2, 5, 4, map[int]int{0: -1})
		assert.ErrorContains(t, err, "merger maps firm 0 to -1")
	})
}
