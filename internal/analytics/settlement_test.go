package analytics

import (
	"reflect"
	"testing"
)

func TestComputeSettlementEmpty(t *testing.T) {
	got := ComputeSettlement(nil)
	want := SettlementResult{MenuSalesList: []MenuSalesAggregate{}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComputeSettlement(nil) = %+v, want %+v", got, want)
	}
}

func TestComputeSettlementTotals(t *testing.T) {
	sales := []SaleRecord{
		{MenuID: 1, MenuName: "Fried Chicken", Quantity: 2, LineTotal: 20000},
		{MenuID: 1, MenuName: "Fried Chicken", Quantity: 1, LineTotal: 10000},
		{MenuID: 2, MenuName: "Tteokbokki", Quantity: 1, LineTotal: 5000},
	}
	got := ComputeSettlement(sales)

	if got.TotalAmount != 35000 {
		t.Errorf("TotalAmount = %d, want 35000", got.TotalAmount)
	}
	want := []MenuSalesAggregate{
		{MenuID: 1, MenuName: "Fried Chicken", Count: 3, Amount: 30000},
		{MenuID: 2, MenuName: "Tteokbokki", Count: 1, Amount: 5000},
	}
	if !reflect.DeepEqual(got.MenuSalesList, want) {
		t.Errorf("MenuSalesList = %+v, want %+v", got.MenuSalesList, want)
	}
}

// Breakdown order follows the first appearance of each menu, not revenue.
func TestComputeSettlementPreservesFirstSeenOrder(t *testing.T) {
	sales := []SaleRecord{
		{MenuID: 7, MenuName: "Cola", Quantity: 1, LineTotal: 2000},
		{MenuID: 3, MenuName: "Pizza", Quantity: 2, LineTotal: 36000},
		{MenuID: 7, MenuName: "Cola", Quantity: 3, LineTotal: 6000},
	}
	got := ComputeSettlement(sales)

	if len(got.MenuSalesList) != 2 {
		t.Fatalf("len(MenuSalesList) = %d, want 2", len(got.MenuSalesList))
	}
	if got.MenuSalesList[0].MenuID != 7 || got.MenuSalesList[1].MenuID != 3 {
		t.Errorf("menu order = [%d, %d], want [7, 3]",
			got.MenuSalesList[0].MenuID, got.MenuSalesList[1].MenuID)
	}
	if got.MenuSalesList[0].Count != 4 || got.MenuSalesList[0].Amount != 8000 {
		t.Errorf("merged menu 7 = %+v, want Count=4 Amount=8000", got.MenuSalesList[0])
	}
	if got.TotalAmount != 44000 {
		t.Errorf("TotalAmount = %d, want 44000", got.TotalAmount)
	}
}
