package cleaner

import (
	"math"
	"slices"
	"time"

	"github.com/datazip-inc/rogue-records/constants"
	"github.com/datazip-inc/rogue-records/types"
	"github.com/datazip-inc/rogue-records/utils/typeutils"
)

// Rule is a stateless repair or filter for one class of defect. Apply checks
// the required columns before touching anything, so a MissingColumnError
// always leaves the dataset unmodified.
type Rule interface {
	Name() string
	RequiredColumns() []string
	Apply(dataset *types.Dataset) (Report, error)
}

func checkColumns(rule Rule, dataset *types.Dataset) error {
	if missing := dataset.MissingColumns(rule.RequiredColumns()...); len(missing) > 0 {
		return &MissingColumnError{Rule: rule.Name(), Columns: missing}
	}
	return nil
}

func newReport(rule Rule, dataset *types.Dataset) Report {
	return Report{
		Rule:       rule.Name(),
		Columns:    rule.RequiredColumns(),
		RowsBefore: dataset.Len(),
		RowsAfter:  dataset.Len(),
	}
}

// MissingCustomerName fills null or empty customer_name with "Unknown Customer"
// and null or empty failure_reason with the string "None".
type MissingCustomerName struct{}

func (MissingCustomerName) Name() string { return "fix_missing_customer_name" }

func (MissingCustomerName) RequiredColumns() []string {
	return []string{constants.CustomerName, constants.FailureReason}
}

func (r MissingCustomerName) Apply(dataset *types.Dataset) (Report, error) {
	if err := checkColumns(r, dataset); err != nil {
		return Report{}, err
	}

	report := newReport(r, dataset)
	for _, row := range dataset.Rows {
		if row.IsNull(constants.CustomerName) {
			row[constants.CustomerName] = constants.UnknownCustomer
			report.Repaired++
		}
		if row.IsNull(constants.FailureReason) {
			row[constants.FailureReason] = constants.NoFailureReason
			report.Repaired++
		}
	}
	return report, nil
}

// InvalidPaymentType drops every row whose payment_type is not one of
// constants.ValidPaymentTypes. Rows are filtered, never repaired.
type InvalidPaymentType struct{}

func (InvalidPaymentType) Name() string { return "drop_invalid_payment_type" }

func (InvalidPaymentType) RequiredColumns() []string {
	return []string{constants.PaymentType}
}

func (r InvalidPaymentType) Apply(dataset *types.Dataset) (Report, error) {
	if err := checkColumns(r, dataset); err != nil {
		return Report{}, err
	}

	report := newReport(r, dataset)
	kept := dataset.Rows[:0]
	for _, row := range dataset.Rows {
		value, isString := row[constants.PaymentType].(string)
		if isString && slices.Contains(constants.ValidPaymentTypes, value) {
			kept = append(kept, row)
		}
	}
	// release dropped rows held by the tail of the backing array
	clear(dataset.Rows[len(kept):])
	dataset.Rows = kept

	report.RowsAfter = dataset.Len()
	report.Removed = report.RowsBefore - report.RowsAfter
	return report, nil
}

// UnrealisticPrice coerces price to a number and clamps anything above
// MaxPrice down to MaxPrice. Non-numeric prices become null; nulls stay null.
type UnrealisticPrice struct {
	MaxPrice float64
}

func (UnrealisticPrice) Name() string { return "cap_unrealistic_price" }

func (UnrealisticPrice) RequiredColumns() []string {
	return []string{constants.Price}
}

func (r UnrealisticPrice) Apply(dataset *types.Dataset) (Report, error) {
	if err := checkColumns(r, dataset); err != nil {
		return Report{}, err
	}

	report := newReport(r, dataset)
	for _, row := range dataset.Rows {
		original := row[constants.Price]
		value := typeutils.ToNumber(original)
		if value == nil && !row.IsNull(constants.Price) {
			report.Coerced++
		}

		if f, ok := typeutils.ToFloat(value); ok && f > r.MaxPrice {
			value = r.capped(value)
			report.Repaired++
		}
		row[constants.Price] = value
	}
	return report, nil
}

// capped keeps integer prices integral when the ceiling allows it.
func (r UnrealisticPrice) capped(value any) any {
	if _, isInt := value.(int64); isInt && r.MaxPrice == math.Trunc(r.MaxPrice) {
		return int64(r.MaxPrice)
	}
	return r.MaxPrice
}

// NegativeQty coerces qty to a number and replaces values below zero with
// DefaultQty. Non-numeric quantities become null and are left null.
type NegativeQty struct {
	DefaultQty int64
}

func (NegativeQty) Name() string { return "fix_negative_qty" }

func (NegativeQty) RequiredColumns() []string {
	return []string{constants.Qty}
}

func (r NegativeQty) Apply(dataset *types.Dataset) (Report, error) {
	if err := checkColumns(r, dataset); err != nil {
		return Report{}, err
	}

	report := newReport(r, dataset)
	for _, row := range dataset.Rows {
		value := typeutils.ToNumber(row[constants.Qty])
		if value == nil && !row.IsNull(constants.Qty) {
			report.Coerced++
		}

		if f, ok := typeutils.ToFloat(value); ok && f < 0 {
			value = r.DefaultQty
			report.Repaired++
		}
		row[constants.Qty] = value
	}
	return report, nil
}

// DatetimeFormat parses every datetime value into a time.Time. Values that do
// not parse become null; the parse never fails the rule.
type DatetimeFormat struct{}

func (DatetimeFormat) Name() string { return "normalize_datetime" }

func (DatetimeFormat) RequiredColumns() []string {
	return []string{constants.Datetime}
}

func (r DatetimeFormat) Apply(dataset *types.Dataset) (Report, error) {
	if err := checkColumns(r, dataset); err != nil {
		return Report{}, err
	}

	report := newReport(r, dataset)
	for _, row := range dataset.Rows {
		value := typeutils.ToTimestamp(row[constants.Datetime])
		if _, parsed := value.(time.Time); !parsed && !row.IsNull(constants.Datetime) {
			report.Coerced++
		}
		row[constants.Datetime] = value
	}
	return report, nil
}
