package cleaner

import (
	"github.com/datazip-inc/rogue-records/constants"
	"github.com/datazip-inc/rogue-records/types"
)

// validRow returns a clean order row with the given overrides applied.
func validRow(overrides types.Record) types.Record {
	row := types.Record{
		constants.OrderID:              int64(1),
		constants.CustomerID:           int64(150),
		constants.CustomerName:         "Neo",
		constants.ProductID:            int64(250),
		constants.ProductName:          "Laptop",
		constants.ProductCategory:      "Electronics",
		constants.PaymentType:          "Card",
		constants.Qty:                  int64(2),
		constants.Price:                int64(500),
		constants.Datetime:             "2022-05-04 10:11:12",
		constants.Country:              "India",
		constants.City:                 "Mumbai",
		constants.EcommerceWebsiteName: "www.amazon.com",
		constants.PaymentTxnID:         int64(12345),
		constants.PaymentTxnSuccess:    "Y",
		constants.FailureReason:        nil,
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

func orderDataset(rows ...types.Record) *types.Dataset {
	return types.NewOrderDataset(rows...)
}

// partialDataset mirrors the fixture of the original test suite: only the six
// columns the rules care about.
func partialDataset() *types.Dataset {
	columns := []string{
		constants.CustomerName, constants.FailureReason, constants.PaymentType,
		constants.Price, constants.Qty, constants.Datetime,
	}
	return types.NewDataset(columns,
		types.Record{
			constants.CustomerName: "Alice", constants.FailureReason: nil, constants.PaymentType: "Card",
			constants.Price: int64(500), constants.Qty: int64(2), constants.Datetime: "2023-01-01 10:00:00",
		},
		types.Record{
			constants.CustomerName: nil, constants.FailureReason: "None", constants.PaymentType: "UPI",
			constants.Price: int64(15000), constants.Qty: int64(-1), constants.Datetime: "2023-01-02 11:00:00",
		},
		types.Record{
			constants.CustomerName: "Charlie", constants.FailureReason: "Network Error", constants.PaymentType: "Invalid Type",
			constants.Price: int64(-200), constants.Qty: int64(5), constants.Datetime: "not a date",
		},
		types.Record{
			constants.CustomerName: "David", constants.FailureReason: nil, constants.PaymentType: "Wallet",
			constants.Price: int64(1200), constants.Qty: int64(0), constants.Datetime: "2023-01-03 12:00:00",
		},
	)
}
