package construction

import (
	"fmt"
	"strconv"

	"blpiv/products"
)

// BuildIDData builds a balanced panel of market and firm identifiers:
// numMarkets markets of numProducts products each, spread over numFirms
// firms. Within every market, product j belongs to firm j*numFirms/numProducts,
// so when numProducts is not divisible by numFirms the lower firm IDs carry
// the excess products.
//
// Each merger adds a further firm identifier column to the frame: a copy of
// the original assignment with the mapped firm IDs replaced. Merger maps
// must stay within [0, numFirms).
func BuildIDData(numMarkets, numProducts, numFirms int, mergers ...map[int]int) (*products.Frame, error) {
	if numMarkets < 1 || numFirms < 1 {
		return nil, fmt.Errorf("construction: need at least one market and one firm")
	}
	if numProducts < numFirms {
		return nil, fmt.Errorf("construction: %d products per market cannot cover %d firms", numProducts, numFirms)
	}
	for _, merger := range mergers {
		for from, to := range merger {
			if from < 0 || from >= numFirms || to < 0 || to >= numFirms {
				return nil, fmt.Errorf("construction: merger maps firm %d to %d, outside [0, %d)", from, to, numFirms)
			}
		}
	}

	n := numMarkets * numProducts
	marketIDs := make([]string, n)
	firmIDs := make([]string, n)
	firms := make([]int, n)
	for t := 0; t < numMarkets; t++ {
		for j := 0; j < numProducts; j++ {
			i := t*numProducts + j
			marketIDs[i] = strconv.Itoa(t)
			firms[i] = j * numFirms / numProducts
			firmIDs[i] = strconv.Itoa(firms[i])
		}
	}

	frame, err := products.NewFrame(marketIDs, firmIDs)
	if err != nil {
		return nil, err
	}
	for _, merger := range mergers {
		changed := make([]string, n)
		for i, f := range firms {
			if to, ok := merger[f]; ok {
				f = to
			}
			changed[i] = strconv.Itoa(f)
		}
		if err := frame.AddFirmIDs(changed); err != nil {
			return nil, err
		}
	}
	return frame, nil
}
