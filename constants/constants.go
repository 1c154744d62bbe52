package constants

import "time"

// order columns
const (
	OrderID              = "order_id"
	CustomerID           = "customer_id"
	CustomerName         = "customer_name"
	ProductID            = "product_id"
	ProductName          = "product_name"
	ProductCategory      = "product_category"
	PaymentType          = "payment_type"
	Qty                  = "qty"
	Price                = "price"
	Datetime             = "datetime"
	Country              = "country"
	City                 = "city"
	EcommerceWebsiteName = "ecommerce_website_name"
	PaymentTxnID         = "payment_txn_id"
	PaymentTxnSuccess    = "payment_txn_success"
	FailureReason        = "failure_reason"
)

// sentinel values used by the cleaning rules
const (
	UnknownCustomer    = "Unknown Customer"
	NoFailureReason    = "None"
	DefaultQty         = 1
	DefaultMaxPrice    = 10000.0
	InvalidPaymentType = "Invalid"
)

const (
	CSVFileExt        = "csv"
	ParquetFileExt    = "parquet"
	RawFilePrefix     = "rogue"
	CleanedFilePrefix = "cleaned"

	// layout of the timestamp suffix in generated file names
	FileTimestampLayout = "20060102_150405"

	// layout used when timestamps are written back to CSV
	DatetimeLayout = time.DateTime
)

// viper keys
const (
	DataDir       = "DATA_DIR"
	RawDir        = "RAW_DIR"
	CleanedDir    = "CLEANED_DIR"
	MaxPrice      = "MAX_PRICE"
	DefaultQtyKey = "DEFAULT_QTY"
	LogLevel      = "LOG_LEVEL"
	LogDir        = "LOG_DIR"
	Records       = "RECORDS"
	RogueProb     = "ROGUE_PROB"
	Seed          = "SEED"
	EnvPrefix     = "ROGUE"
)

// ValidPaymentTypes is the closed set of accepted payment_type values.
var ValidPaymentTypes = []string{"Card", "Internet Banking", "UPI", "Wallet"}
