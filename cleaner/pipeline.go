package cleaner

import (
	"time"

	"github.com/datazip-inc/rogue-records/constants"
	"github.com/datazip-inc/rogue-records/types"
	"github.com/datazip-inc/rogue-records/utils/logger"
)

type Options struct {
	MaxPrice   float64
	DefaultQty int64
	Format     types.FileFormat
	// Now stamps saved file names.
	Now func() time.Time
}

type Option func(opt *Options)

func WithMaxPrice(maxPrice float64) Option {
	return func(opt *Options) {
		opt.MaxPrice = maxPrice
	}
}

func WithDefaultQty(qty int64) Option {
	return func(opt *Options) {
		opt.DefaultQty = qty
	}
}

func WithFormat(format types.FileFormat) Option {
	return func(opt *Options) {
		opt.Format = format
	}
}

func WithClock(now func() time.Time) Option {
	return func(opt *Options) {
		opt.Now = now
	}
}

// Pipeline applies cleaning rules to a private copy of a dataset. Every rule
// method returns the pipeline itself so calls can be chained:
//
//	p.FixMissingCustomerName().DropInvalidPaymentType().FixNegativeQty()
//
// The first rule error stops the chain: later rule calls do nothing and Err
// returns that error. A Pipeline is owned by one goroutine; it is not safe for
// concurrent use.
type Pipeline struct {
	dataset *types.Dataset
	options Options
	reports []Report
	summary *Summary
	err     error
}

// NewPipeline validates dataset and takes a deep copy of it, so the caller's
// dataset is never modified.
func NewPipeline(dataset *types.Dataset, opts ...Option) (*Pipeline, error) {
	if err := dataset.Validate(); err != nil {
		return nil, &InvalidInputError{Reason: err}
	}

	options := Options{
		MaxPrice:   constants.DefaultMaxPrice,
		DefaultQty: constants.DefaultQty,
		Format:     types.CSV,
		Now:        time.Now,
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &Pipeline{
		dataset: dataset.Clone(),
		options: options,
	}, nil
}

// Apply runs one rule against the working copy.
func (p *Pipeline) Apply(rule Rule) *Pipeline {
	if p.err != nil {
		return p
	}

	report, err := rule.Apply(p.dataset)
	if err != nil {
		logger.Errorf("cleaning stopped at %s: %s", rule.Name(), err)
		p.err = err
		return p
	}

	p.reports = append(p.reports, report)
	logger.Debugf("%s: repaired=%d coerced=%d removed=%d rows=%d",
		report.Rule, report.Repaired, report.Coerced, report.Removed, report.RowsAfter)
	return p
}

func (p *Pipeline) FixMissingCustomerName() *Pipeline {
	return p.Apply(MissingCustomerName{})
}

func (p *Pipeline) DropInvalidPaymentType() *Pipeline {
	return p.Apply(InvalidPaymentType{})
}

func (p *Pipeline) CapUnrealisticPrice() *Pipeline {
	return p.Apply(UnrealisticPrice{MaxPrice: p.options.MaxPrice})
}

func (p *Pipeline) FixNegativeQty() *Pipeline {
	return p.Apply(NegativeQty{DefaultQty: p.options.DefaultQty})
}

func (p *Pipeline) NormalizeDatetime() *Pipeline {
	return p.Apply(DatetimeFormat{})
}

// Canonical runs the order every front-end uses: inspect, fix names, drop
// invalid payment types, optionally cap prices, fix quantities, normalize
// datetimes. Filtering runs before the repairs so dropped rows are never
// repaired.
func (p *Pipeline) Canonical(capPrice bool) *Pipeline {
	p.Inspect().
		FixMissingCustomerName().
		DropInvalidPaymentType()
	if capPrice {
		p.CapUnrealisticPrice()
	}
	return p.FixNegativeQty().
		NormalizeDatetime()
}

// Err returns the error that stopped the chain, if any.
func (p *Pipeline) Err() error {
	return p.err
}

// CleanedData returns a copy of the current state of the dataset. Later rule
// calls do not affect a copy already handed out.
func (p *Pipeline) CleanedData() *types.Dataset {
	return p.dataset.Clone()
}

// Reports returns one report per successfully applied rule, in order.
func (p *Pipeline) Reports() []Report {
	out := make([]Report, len(p.reports))
	copy(out, p.reports)
	return out
}

// Summary returns the result of the last Inspect call, or nil.
func (p *Pipeline) Summary() *Summary {
	return p.summary
}
