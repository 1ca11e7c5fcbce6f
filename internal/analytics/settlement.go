package analytics

// SaleRecord is one order line within a settlement scope (one store, one
// calendar month). The scope filtering happens upstream; this package only
// aggregates what it is handed.
type SaleRecord struct {
	MenuID    int64  `json:"menu_id"`
	MenuName  string `json:"menu_name"`
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"line_total"`
}

// MenuSalesAggregate is the per-menu rollup inside a SettlementResult.
type MenuSalesAggregate struct {
	MenuID   int64  `json:"menu_id"`
	MenuName string `json:"menu_name"`
	Count    int    `json:"count"`
	Amount   int64  `json:"amount"`
}

// SettlementResult is the monthly payout breakdown for one store.
type SettlementResult struct {
	TotalAmount   int64                `json:"total_amount"`
	MenuSalesList []MenuSalesAggregate `json:"menu_sales_list"`
}

// ComputeSettlement groups sale lines by menu and sums units and revenue.
// MenuSalesList preserves the first-seen order of each menu ID, so the
// result is stable for a given input ordering. Empty input yields a zero
// result rather than an error.
func ComputeSettlement(sales []SaleRecord) SettlementResult {
	result := SettlementResult{MenuSalesList: []MenuSalesAggregate{}}
	if len(sales) == 0 {
		return result
	}

	indexByMenu := make(map[int64]int)
	for _, sale := range sales {
		idx, ok := indexByMenu[sale.MenuID]
		if !ok {
			idx = len(result.MenuSalesList)
			indexByMenu[sale.MenuID] = idx
			result.MenuSalesList = append(result.MenuSalesList, MenuSalesAggregate{
				MenuID:   sale.MenuID,
				MenuName: sale.MenuName,
			})
		}
		result.MenuSalesList[idx].Count += sale.Quantity
		result.MenuSalesList[idx].Amount += sale.LineTotal
		result.TotalAmount += sale.LineTotal
	}
	return result
}
