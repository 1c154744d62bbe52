package generator

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"time"

	"github.com/datazip-inc/rogue-records/constants"
	"github.com/datazip-inc/rogue-records/types"
	"github.com/datazip-inc/rogue-records/utils"
	"github.com/datazip-inc/rogue-records/utils/logger"
	"github.com/datazip-inc/rogue-records/writers"

	_ "github.com/datazip-inc/rogue-records/writers/csv"
	_ "github.com/datazip-inc/rogue-records/writers/parquet"
)

// Defect is a class of data-quality problem injected into a record.
type Defect string

const (
	MissingCustomerName Defect = "missing_customer_name"
	InvalidPaymentType  Defect = "invalid_payment_type"
	NegativeQty         Defect = "negative_qty"
	MissingProductID    Defect = "missing_product_id"
	FutureOrderDate     Defect = "future_order_date"
)

var Defects = []Defect{MissingCustomerName, InvalidPaymentType, NegativeQty, MissingProductID, FutureOrderDate}

var (
	startDate = time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate   = time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	// the date every future_order_date defect carries
	sentinelDate = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
)

type Config struct {
	Records   int     `json:"records" validate:"gte=0"`
	RogueProb float64 `json:"rogue_prob" validate:"gte=0,lte=1"`
	// Seed makes the output reproducible; zero picks a random seed.
	Seed uint64 `json:"seed"`
}

func DefaultConfig() Config {
	return Config{Records: 10000, RogueProb: 0.1}
}

// Batch is one generated dataset and the defects injected into it.
type Batch struct {
	Dataset *types.Dataset
	Defects map[Defect]int
}

// Rogue returns the number of corrupted records in the batch.
func (b *Batch) Rogue() int {
	total := 0
	for _, count := range b.Defects {
		total += count
	}
	return total
}

type Generator struct {
	config Config
	rand   *rand.Rand
}

func New(config Config) (*Generator, error) {
	if err := utils.Validate(config); err != nil {
		return nil, fmt.Errorf("invalid generator config: %s", err)
	}

	seed := config.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Generator{
		config: config,
		rand:   rand.New(rand.NewPCG(seed, seed>>1|1)),
	}, nil
}

// Generate produces config.Records order records. Each record is corrupted
// with probability config.RogueProb by one defect picked uniformly.
func (g *Generator) Generate() *Batch {
	batch := &Batch{
		Dataset: types.NewOrderDataset(),
		Defects: make(map[Defect]int),
	}
	batch.Dataset.Rows = make([]types.Record, 0, g.config.Records)

	for i := range g.config.Records {
		record := g.record(int64(i + 1))
		if g.rand.Float64() < g.config.RogueProb {
			defect := g.corrupt(record)
			batch.Defects[defect]++
		}
		batch.Dataset.Rows = append(batch.Dataset.Rows, record)
	}

	logger.Infof("generated %d records, %d of them rogue", batch.Dataset.Len(), batch.Rogue())
	return batch
}

func (g *Generator) record(orderID int64) types.Record {
	category := g.pick(Categories)
	country := g.pick(Countries)

	success := g.pick([]string{"Y", "N"})
	var failureReason any
	if success == "N" {
		failureReason = g.pick(failureReasons)
	}

	return types.Record{
		constants.OrderID:              orderID,
		constants.CustomerID:           int64(g.rand.IntN(101) + 100),
		constants.CustomerName:         g.pick(customerNames),
		constants.ProductID:            int64(g.rand.IntN(101) + 200),
		constants.ProductName:          g.pick(Products(category)),
		constants.ProductCategory:      category,
		constants.PaymentType:          g.pick(constants.ValidPaymentTypes),
		constants.Qty:                  int64(g.rand.IntN(50) + 1),
		constants.Price:                int64(g.rand.IntN(9996) + 5),
		constants.Datetime:             g.datetime(),
		constants.Country:              country,
		constants.City:                 g.pick(Cities(country)),
		constants.EcommerceWebsiteName: g.pick(websites),
		constants.PaymentTxnID:         int64(g.rand.IntN(90000) + 10000),
		constants.PaymentTxnSuccess:    success,
		constants.FailureReason:        failureReason,
	}
}

func (g *Generator) corrupt(record types.Record) Defect {
	defect := Defects[g.rand.IntN(len(Defects))]
	switch defect {
	case MissingCustomerName:
		record[constants.CustomerName] = ""
	case InvalidPaymentType:
		record[constants.PaymentType] = constants.InvalidPaymentType
	case NegativeQty:
		record[constants.Qty] = -int64(g.rand.IntN(50))
	case MissingProductID:
		record[constants.ProductID] = nil
	case FutureOrderDate:
		record[constants.Datetime] = sentinelDate
	}
	return defect
}

func (g *Generator) datetime() time.Time {
	span := int64(endDate.Sub(startDate) / time.Second)
	return startDate.Add(time.Duration(g.rand.Int64N(span)) * time.Second)
}

func (g *Generator) pick(values []string) string {
	return values[g.rand.IntN(len(values))]
}

// Save writes the dataset into dir as rogue_<YYYYMMDD>_<HHMMSS>.<ext> and
// returns the path.
func Save(dataset *types.Dataset, dir string, format types.FileFormat, now time.Time) (string, error) {
	writer, err := writers.NewWriter(format)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, utils.TimestampedFileName(constants.RawFilePrefix, writer.Extension(), now))
	if err := writer.Write(path, dataset); err != nil {
		return "", fmt.Errorf("an error occurred while saving the file: %s", err)
	}

	logger.Infof("file saved successfully as %s", path)
	return path, nil
}
