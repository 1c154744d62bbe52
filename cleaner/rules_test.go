package cleaner

import (
	"testing"
	"time"

	"github.com/datazip-inc/rogue-records/constants"
	"github.com/datazip-inc/rogue-records/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allRules() []Rule {
	return []Rule{
		MissingCustomerName{},
		InvalidPaymentType{},
		UnrealisticPrice{MaxPrice: constants.DefaultMaxPrice},
		NegativeQty{DefaultQty: constants.DefaultQty},
		DatetimeFormat{},
	}
}

func TestMissingCustomerName(t *testing.T) {
	dataset := orderDataset(
		validRow(types.Record{constants.CustomerName: nil}),
		validRow(types.Record{constants.CustomerName: ""}),
		validRow(types.Record{constants.CustomerName: "Trinity", constants.FailureReason: "Timeout"}),
		validRow(types.Record{constants.FailureReason: ""}),
	)

	report, err := MissingCustomerName{}.Apply(dataset)
	require.NoError(t, err)

	for _, row := range dataset.Rows {
		assert.False(t, row.IsNull(constants.CustomerName))
		assert.False(t, row.IsNull(constants.FailureReason))
	}
	assert.Equal(t, constants.UnknownCustomer, dataset.Rows[0][constants.CustomerName])
	assert.Equal(t, constants.UnknownCustomer, dataset.Rows[1][constants.CustomerName])
	assert.Equal(t, "Trinity", dataset.Rows[2][constants.CustomerName])
	assert.Equal(t, "Timeout", dataset.Rows[2][constants.FailureReason])
	assert.Equal(t, constants.NoFailureReason, dataset.Rows[3][constants.FailureReason])
	// two names plus three failure reasons
	assert.Equal(t, 5, report.Repaired)
}

func TestInvalidPaymentType(t *testing.T) {
	dataset := orderDataset(
		validRow(types.Record{constants.OrderID: int64(1), constants.PaymentType: "Card"}),
		validRow(types.Record{constants.OrderID: int64(2), constants.PaymentType: "Invalid"}),
		validRow(types.Record{constants.OrderID: int64(3), constants.PaymentType: "Internet Banking"}),
		validRow(types.Record{constants.OrderID: int64(4), constants.PaymentType: nil}),
		validRow(types.Record{constants.OrderID: int64(5), constants.PaymentType: "upi"}),
		validRow(types.Record{constants.OrderID: int64(6), constants.PaymentType: "Wallet"}),
	)

	report, err := InvalidPaymentType{}.Apply(dataset)
	require.NoError(t, err)

	require.Equal(t, 3, dataset.Len())
	var ids []any
	for _, row := range dataset.Rows {
		assert.Contains(t, constants.ValidPaymentTypes, row[constants.PaymentType])
		ids = append(ids, row[constants.OrderID])
	}
	assert.Equal(t, []any{int64(1), int64(3), int64(6)}, ids)
	assert.Equal(t, 3, report.Removed)
	assert.Equal(t, 6, report.RowsBefore)
	assert.Equal(t, 3, report.RowsAfter)
}

func TestUnrealisticPrice(t *testing.T) {
	testCases := []struct {
		name     string
		price    any
		expected any
	}{
		{"integer below cap unchanged", int64(50), int64(50)},
		{"integer at cap unchanged", int64(10000), int64(10000)},
		{"integer above cap clamped", int64(999999), int64(10000)},
		{"float above cap clamped", 10000.5, 10000.0},
		{"float below cap unchanged", 99.99, 99.99},
		{"numeric string coerced", "250", int64(250)},
		{"numeric string above cap", "20000.75", 10000.0},
		{"non numeric becomes null", "expensive", nil},
		{"null stays null", nil, nil},
		{"negative price untouched", int64(-200), int64(-200)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dataset := orderDataset(validRow(types.Record{constants.Price: tc.price}))
			_, err := UnrealisticPrice{MaxPrice: 10000}.Apply(dataset)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, dataset.Rows[0][constants.Price])
		})
	}
}

func TestUnrealisticPriceFractionalCap(t *testing.T) {
	dataset := orderDataset(validRow(types.Record{constants.Price: int64(100)}))
	_, err := UnrealisticPrice{MaxPrice: 99.5}.Apply(dataset)
	require.NoError(t, err)
	assert.Equal(t, 99.5, dataset.Rows[0][constants.Price])
}

func TestNegativeQty(t *testing.T) {
	testCases := []struct {
		name     string
		qty      any
		expected any
	}{
		{"positive unchanged", int64(7), int64(7)},
		{"zero unchanged", int64(0), int64(0)},
		{"negative replaced", int64(-3), int64(1)},
		{"negative float replaced", -0.5, int64(1)},
		{"negative string replaced", "-12", int64(1)},
		{"numeric string coerced", "4", int64(4)},
		{"non numeric becomes null", "many", nil},
		{"null stays null", nil, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dataset := orderDataset(validRow(types.Record{constants.Qty: tc.qty}))
			report, err := NegativeQty{DefaultQty: 1}.Apply(dataset)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, dataset.Rows[0][constants.Qty])
			if tc.name == "non numeric becomes null" {
				assert.Equal(t, 1, report.Coerced)
			}
		})
	}
}

func TestNegativeQtyConfiguredDefault(t *testing.T) {
	dataset := orderDataset(validRow(types.Record{constants.Qty: int64(-9)}))
	_, err := NegativeQty{DefaultQty: 3}.Apply(dataset)
	require.NoError(t, err)
	assert.Equal(t, int64(3), dataset.Rows[0][constants.Qty])
}

func TestDatetimeFormat(t *testing.T) {
	parsed := time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)
	testCases := []struct {
		name     string
		value    any
		expected any
	}{
		{"datetime string", "2023-01-01 10:00:00", parsed},
		{"iso string", "2023-01-01T10:00:00Z", parsed},
		{"date only", "2023-01-01", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"already parsed", parsed, parsed},
		{"garbage", "not-a-date", nil},
		{"empty", "", nil},
		{"null", nil, nil},
		{"number", int64(20230101), nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dataset := orderDataset(validRow(types.Record{constants.Datetime: tc.value}))
			_, err := DatetimeFormat{}.Apply(dataset)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, dataset.Rows[0][constants.Datetime])
		})
	}
}

func TestRulesAreIdempotent(t *testing.T) {
	for _, rule := range allRules() {
		t.Run(rule.Name(), func(t *testing.T) {
			once := partialDataset()
			_, err := rule.Apply(once)
			require.NoError(t, err)

			twice := once.Clone()
			report, err := rule.Apply(twice)
			require.NoError(t, err)

			assert.Equal(t, once, twice)
			assert.False(t, report.Changed())
		})
	}
}

func TestRulesMissingColumn(t *testing.T) {
	for _, rule := range allRules() {
		t.Run(rule.Name(), func(t *testing.T) {
			columns := []string{constants.OrderID, constants.Country}
			dataset := types.NewDataset(columns,
				types.Record{constants.OrderID: int64(1), constants.Country: "UK"},
			)
			before := dataset.Clone()

			_, err := rule.Apply(dataset)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingColumn)

			var missing *MissingColumnError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, rule.Name(), missing.Rule)
			assert.ElementsMatch(t, rule.RequiredColumns(), missing.Columns)
			assert.Equal(t, before, dataset)
		})
	}
}

func TestMissingCustomerNameNeedsFailureReason(t *testing.T) {
	dataset := types.NewDataset([]string{constants.CustomerName},
		types.Record{constants.CustomerName: nil},
	)

	_, err := MissingCustomerName{}.Apply(dataset)
	var missing *MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{constants.FailureReason}, missing.Columns)
	// nothing was filled before the column check failed
	assert.Nil(t, dataset.Rows[0][constants.CustomerName])
}
