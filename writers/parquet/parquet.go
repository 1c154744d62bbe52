package parquet

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/datazip-inc/rogue-records/constants"
	"github.com/datazip-inc/rogue-records/types"
	"github.com/datazip-inc/rogue-records/utils"
	"github.com/datazip-inc/rogue-records/utils/typeutils"
	"github.com/datazip-inc/rogue-records/writers"
	pqgo "github.com/parquet-go/parquet-go"
)

// OrderRow is the parquet layout of an order record. Pointer fields are
// optional columns; cells that do not fit the column type are written as null.
type OrderRow struct {
	OrderID              *int64     `parquet:"order_id"`
	CustomerID           *int64     `parquet:"customer_id"`
	CustomerName         *string    `parquet:"customer_name"`
	ProductID            *int64     `parquet:"product_id"`
	ProductName          *string    `parquet:"product_name"`
	ProductCategory      *string    `parquet:"product_category"`
	PaymentType          *string    `parquet:"payment_type"`
	Qty                  *int64     `parquet:"qty"`
	Price                *float64   `parquet:"price"`
	Datetime             *time.Time `parquet:"datetime"`
	Country              *string    `parquet:"country"`
	City                 *string    `parquet:"city"`
	EcommerceWebsiteName *string    `parquet:"ecommerce_website_name"`
	PaymentTxnID         *int64     `parquet:"payment_txn_id"`
	PaymentTxnSuccess    *string    `parquet:"payment_txn_success"`
	FailureReason        *string    `parquet:"failure_reason"`
}

// Parquet writes order datasets as snappy compressed parquet files.
type Parquet struct{}

func (p *Parquet) Extension() string {
	return constants.ParquetFileExt
}

func (p *Parquet) Write(path string, dataset *types.Dataset) error {
	if missing := dataset.MissingColumns(types.OrderColumns()...); len(missing) > 0 {
		return fmt.Errorf("parquet export needs the order schema, missing columns %v", missing)
	}

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory for %s: %s", path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %s", path, err)
	}

	rows := make([]OrderRow, 0, dataset.Len())
	for _, record := range dataset.Rows {
		rows = append(rows, toOrderRow(record))
	}

	writer := pqgo.NewGenericWriter[OrderRow](file, pqgo.Compression(&pqgo.Snappy))
	_, writeErr := writer.Write(rows)

	return utils.ErrExecSequential(
		utils.ErrExecFormat("parquet write error: %s", func() error { return writeErr }),
		utils.ErrExecFormat("failed to close writer: %s", writer.Close),
		utils.ErrExecFormat("failed to close file: %s", file.Close),
	)
}

func toOrderRow(record types.Record) OrderRow {
	return OrderRow{
		OrderID:              intCell(record[constants.OrderID]),
		CustomerID:           intCell(record[constants.CustomerID]),
		CustomerName:         stringCell(record[constants.CustomerName]),
		ProductID:            intCell(record[constants.ProductID]),
		ProductName:          stringCell(record[constants.ProductName]),
		ProductCategory:      stringCell(record[constants.ProductCategory]),
		PaymentType:          stringCell(record[constants.PaymentType]),
		Qty:                  intCell(record[constants.Qty]),
		Price:                floatCell(record[constants.Price]),
		Datetime:             timeCell(record[constants.Datetime]),
		Country:              stringCell(record[constants.Country]),
		City:                 stringCell(record[constants.City]),
		EcommerceWebsiteName: stringCell(record[constants.EcommerceWebsiteName]),
		PaymentTxnID:         intCell(record[constants.PaymentTxnID]),
		PaymentTxnSuccess:    stringCell(record[constants.PaymentTxnSuccess]),
		FailureReason:        stringCell(record[constants.FailureReason]),
	}
}

func intCell(v any) *int64 {
	switch n := typeutils.ToNumber(v).(type) {
	case int64:
		return &n
	case float64:
		if n != float64(int64(n)) {
			return nil
		}
		i := int64(n)
		return &i
	}
	return nil
}

func floatCell(v any) *float64 {
	f, ok := typeutils.ToFloat(typeutils.ToNumber(v))
	if !ok {
		return nil
	}
	return &f
}

func stringCell(v any) *string {
	if v == nil {
		return nil
	}
	s := types.Stringify(v, constants.DatetimeLayout)
	return &s
}

func timeCell(v any) *time.Time {
	t, ok := typeutils.ToTimestamp(v).(time.Time)
	if !ok {
		return nil
	}
	return &t
}

func init() {
	writers.RegisteredWriters[types.Parquet] = func() writers.Writer {
		return new(Parquet)
	}
}
