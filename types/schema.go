package types

import "github.com/datazip-inc/rogue-records/constants"

// Column describes one named, typed column of the order schema.
type Column struct {
	Name     string
	Type     DataType
	Nullable bool
}

// OrderSchema is the fixed 16-column layout of an order record, in file order.
var OrderSchema = []Column{
	{Name: constants.OrderID, Type: INT64},
	{Name: constants.CustomerID, Type: INT64},
	{Name: constants.CustomerName, Type: STRING, Nullable: true},
	{Name: constants.ProductID, Type: INT64, Nullable: true},
	{Name: constants.ProductName, Type: STRING},
	{Name: constants.ProductCategory, Type: STRING},
	{Name: constants.PaymentType, Type: STRING},
	{Name: constants.Qty, Type: INT64, Nullable: true},
	{Name: constants.Price, Type: FLOAT64, Nullable: true},
	{Name: constants.Datetime, Type: TIMESTAMP},
	{Name: constants.Country, Type: STRING},
	{Name: constants.City, Type: STRING},
	{Name: constants.EcommerceWebsiteName, Type: STRING},
	{Name: constants.PaymentTxnID, Type: INT64},
	{Name: constants.PaymentTxnSuccess, Type: STRING},
	{Name: constants.FailureReason, Type: STRING, Nullable: true},
}

var schemaIndex = func() map[string]Column {
	index := make(map[string]Column, len(OrderSchema))
	for _, col := range OrderSchema {
		index[col.Name] = col
	}
	return index
}()

// OrderColumns returns the column names of OrderSchema in order.
func OrderColumns() []string {
	names := make([]string, 0, len(OrderSchema))
	for _, col := range OrderSchema {
		names = append(names, col.Name)
	}
	return names
}

// LookupColumn returns the schema entry for name, if name is an order column.
func LookupColumn(name string) (Column, bool) {
	col, ok := schemaIndex[name]
	return col, ok
}
