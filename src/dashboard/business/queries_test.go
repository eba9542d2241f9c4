package business_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azhagan2/retail-pos-pipeline/src/dashboard/business"
)

func TestBuildSalesSummaryQuery(t *testing.T) {
	tests := []struct {
		name           string
		filter         business.SalesFilter
		wantPredicates []string
		wantArgs       []any
	}{
		{
			name:   "no filters appends no predicate",
			filter: business.SalesFilter{},
		},
		{
			name:           "city filter matches partially and case-insensitively",
			filter:         business.SalesFilter{City: "york"},
			wantPredicates: []string{"city ILIKE ?"},
			wantArgs:       []any{"%york%"},
		},
		{
			name:           "store filter matches exactly",
			filter:         business.SalesFilter{StoreID: "295"},
			wantPredicates: []string{"store_id = ?"},
			wantArgs:       []any{"295"},
		},
		{
			name:           "both filters combine with AND",
			filter:         business.SalesFilter{City: "york", StoreID: "295"},
			wantPredicates: []string{"city ILIKE ? AND store_id = ?"},
			wantArgs:       []any{"%york%", "295"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := business.BuildSalesSummaryQuery(tt.filter)

			assert.True(t, strings.HasPrefix(query, "SELECT"))
			assert.Contains(t, query, "FROM retail_pos_processed")
			assert.Contains(t, query, "GROUP BY store_id, city")

			if len(tt.wantPredicates) == 0 {
				assert.NotContains(t, query, "WHERE")
				assert.Empty(t, args)
				return
			}

			require.Contains(t, query, "WHERE")
			for _, p := range tt.wantPredicates {
				assert.Contains(t, query, p)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

// Filter input must never end up in the query text itself.
func TestBuildSalesSummaryQueryBindsInsteadOfInterpolating(t *testing.T) {
	hostile := "x' OR '1'='1"
	query, args := business.BuildSalesSummaryQuery(business.SalesFilter{City: hostile, StoreID: hostile})

	assert.NotContains(t, query, hostile)
	assert.Equal(t, []any{"%" + hostile + "%", hostile}, args)
}

func TestStoreSalesQueryExcludesCanceledTransactions(t *testing.T) {
	assert.Contains(t, business.StoreSalesQuery, "rpp.is_canceled = FALSE")
	assert.Contains(t, business.StoreSalesQuery, "JOIN retail_pos_processed")
	assert.Contains(t, business.StoreSalesQuery, "GROUP BY ds.region, ds.city, ds.store_name, ds.is_active")
}
