package business

import "strings"

// SalesFilter narrows the sales summary. City matches partially and
// case-insensitively, StoreID matches exactly. Empty values filter nothing.
type SalesFilter struct {
	City    string
	StoreID string
}

const salesSummaryBase = `SELECT
  store_id,
  city,
  COUNT(DISTINCT transaction_id) AS transactions,
  SUM(CASE
        WHEN is_canceled THEN 0
        WHEN is_refunded THEN (price * quantity) - refund_amount
        ELSE price * quantity
      END) AS net_sales_amount,
  SUM(quantity) AS total_units,
  SUM(CASE WHEN is_refunded THEN 1 ELSE 0 END) AS refunds,
  SUM(CASE WHEN is_canceled THEN 1 ELSE 0 END) AS cancels,
  MIN(timestamp) AS window_start,
  MAX(timestamp) AS window_end
FROM retail_pos_processed`

// BuildSalesSummaryQuery returns the per-(store, city) aggregation query and
// its bind arguments. Filter values are always bound as parameters, never
// spliced into the query text.
func BuildSalesSummaryQuery(filter SalesFilter) (string, []any) {
	var predicates []string
	var args []any

	if filter.City != "" {
		predicates = append(predicates, "city ILIKE ?")
		args = append(args, "%"+filter.City+"%")
	}
	if filter.StoreID != "" {
		predicates = append(predicates, "store_id = ?")
		args = append(args, filter.StoreID)
	}

	query := salesSummaryBase
	if len(predicates) > 0 {
		query += "\nWHERE " + strings.Join(predicates, " AND ")
	}
	query += "\nGROUP BY store_id, city"

	return query, args
}

// StoreSalesQuery joins the store dimension against the fact table and rolls
// up sales per region/city/store, excluding canceled transactions.
const StoreSalesQuery = `SELECT
  ds.region,
  ds.city,
  ds.store_name,
  ds.is_active,
  SUM(rpp.total_amount) AS total_sales,
  COUNT(DISTINCT rpp.transaction_id) AS num_transactions
FROM dim_store ds
JOIN retail_pos_processed rpp
  ON ds.store_id = rpp.store_id
WHERE rpp.is_canceled = FALSE
GROUP BY ds.region, ds.city, ds.store_name, ds.is_active`

// InventoryQuery reads the silver-layer inventory table.
const InventoryQuery = `SELECT
  id,
  image,
  item_name,
  price,
  units_sold,
  units_left,
  cost_price,
  reorder_point,
  description,
  last_updated
FROM inventory`
