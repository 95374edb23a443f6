package option

import "fmt"

// MissingStepError reports that a required build step was not called before
// Builder.Finalize. Step holds the name of the first missing step.
type MissingStepError struct {
	Step string
}

func (e *MissingStepError) Error() string {
	return fmt.Sprintf("did not call %s before finalizing option", e.Step)
}

// Builder accumulates BSOption parameters step by step and validates at
// Finalize that every required one was supplied. The payout rate is optional
// and defaults to 0. Steps may be called in any order.
//
//	opt, err := option.NewBuilder().
//		WithAssetPrice(100.0).
//		WithStrike(105.0).
//		WithInterest(0.005).
//		WithVolatility(0.23).
//		WithCurrentTime(1606780800).
//		WithMaturityTime(1610668800).
//		Finalize()
type Builder struct {
	timeCurr     int64
	timeMaturity int64
	assetPrice   float64
	strike       float64
	interest     float64
	volatility   float64
	payoutRate   float64

	hasTimeCurr     bool
	hasTimeMaturity bool
	hasAssetPrice   bool
	hasStrike       bool
	hasInterest     bool
	hasVolatility   bool
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithCurrentTime sets the valuation time as an epoch-second timestamp.
func (b *Builder) WithCurrentTime(timeCurr int64) *Builder {
	b.timeCurr = timeCurr
	b.hasTimeCurr = true
	return b
}

// WithMaturityTime sets the expiry time as an epoch-second timestamp.
func (b *Builder) WithMaturityTime(timeMaturity int64) *Builder {
	b.timeMaturity = timeMaturity
	b.hasTimeMaturity = true
	return b
}

// WithAssetPrice sets the underlying spot price.
func (b *Builder) WithAssetPrice(assetPrice float64) *Builder {
	b.assetPrice = assetPrice
	b.hasAssetPrice = true
	return b
}

// WithStrike sets the strike price.
func (b *Builder) WithStrike(strike float64) *Builder {
	b.strike = strike
	b.hasStrike = true
	return b
}

// WithInterest sets the annualized risk-free rate in decimal form.
func (b *Builder) WithInterest(interest float64) *Builder {
	b.interest = interest
	b.hasInterest = true
	return b
}

// WithVolatility sets the annualized implied volatility in decimal form.
func (b *Builder) WithVolatility(volatility float64) *Builder {
	b.volatility = volatility
	b.hasVolatility = true
	return b
}

// WithPayoutRate sets the continuous payout yield. Optional; defaults to 0.
func (b *Builder) WithPayoutRate(payoutRate float64) *Builder {
	b.payoutRate = payoutRate
	return b
}

// Finalize returns the built BSOption, or a *MissingStepError naming the
// first required step that was not called. Numeric ranges are not validated;
// presence is.
func (b *Builder) Finalize() (*BSOption, error) {
	switch {
	case !b.hasTimeCurr:
		return nil, &MissingStepError{Step: "WithCurrentTime"}
	case !b.hasTimeMaturity:
		return nil, &MissingStepError{Step: "WithMaturityTime"}
	case !b.hasAssetPrice:
		return nil, &MissingStepError{Step: "WithAssetPrice"}
	case !b.hasStrike:
		return nil, &MissingStepError{Step: "WithStrike"}
	case !b.hasInterest:
		return nil, &MissingStepError{Step: "WithInterest"}
	case !b.hasVolatility:
		return nil, &MissingStepError{Step: "WithVolatility"}
	}

	opt := New(b.timeCurr, b.timeMaturity, b.assetPrice, b.strike, b.interest, b.volatility, b.payoutRate)
	return &opt, nil
}
