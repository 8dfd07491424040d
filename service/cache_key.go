package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"loan-tranche/domain"
)

// searchCacheKey hashes the principal and the offers in input order. Order
// matters because it decides which pair wins a tie.
func searchCacheKey(input domain.TrancheSearchInput) string {
	var b strings.Builder
	b.WriteString(strconv.FormatFloat(input.Principal, 'g', -1, 64))
	for _, o := range input.Offers {
		b.WriteByte('|')
		b.WriteString(strconv.FormatFloat(o.DurationYears, 'g', -1, 64))
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(o.AnnualRatePercent, 'g', -1, 64))
	}
	return fmt.Sprintf("%s%016x", searchCachePrefix, xxhash.Sum64String(b.String()))
}
