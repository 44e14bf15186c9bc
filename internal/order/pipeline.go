package order

// Pipeline runs its validators in order and converts the record once all
// of them pass. It holds no mutable state and may be shared between
// goroutines; each call owns the record it is given.
type Pipeline struct {
	validators []Validator
	converter  Converter
}

// NewPipeline creates a Pipeline from an ordered validator list and a
// converter.
func NewPipeline(converter Converter, validators ...Validator) *Pipeline {
	return &Pipeline{
		validators: validators,
		converter:  converter,
	}
}

// Options tunes the default pipeline.
type Options struct {
	Rate                int64
	PriceCeiling        int64
	CollapsePriceErrors bool
}

// Option mutates Options.
type Option func(*Options)

// WithRate sets the USD to TWD rate.
func WithRate(rate int64) Option {
	return func(o *Options) { o.Rate = rate }
}

// WithPriceCeiling sets the highest accepted price.
func WithPriceCeiling(ceiling int64) Option {
	return func(o *Options) { o.PriceCeiling = ceiling }
}

// WithCollapsedPriceErrors reports prices above the ceiling as a price
// format error.
func WithCollapsedPriceErrors() Option {
	return func(o *Options) { o.CollapsePriceErrors = true }
}

// NewDefaultPipeline builds the structural, business, conversion chain.
func NewDefaultPipeline(opts ...Option) *Pipeline {
	o := Options{
		Rate:         DefaultUSDToTWDRate,
		PriceCeiling: DefaultPriceCeiling,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return NewPipeline(
		NewFixedRateConverter(o.Rate),
		NewStructuralValidator(),
		NewBusinessValidator(o.PriceCeiling, o.CollapsePriceErrors),
	)
}

// Process validates r and returns the converted record. The first
// validation error is returned unwrapped and r is not converted.
func (p *Pipeline) Process(r Record) (Record, error) {
	for _, v := range p.validators {
		if err := v.Validate(r); err != nil {
			return nil, err
		}
	}
	return p.converter.Convert(r)
}
