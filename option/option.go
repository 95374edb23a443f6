// Package option prices European vanilla options under the
// Black-Scholes-Merton model.
//
// The entry point is BSOption, a plain-value record of contract and market
// parameters. Call value and delta come from the closed-form formulas; gamma,
// vega, and theta are derived from them by bump-and-revalue finite
// differences, so any change to the value formula propagates to the
// sensitivities automatically.
package option

import (
	"github.com/mfg-nyu/opcalc/utils"
)

// BSOption holds the inputs to a Black-Scholes valuation along with one
// derived quantity, the time to maturity in years.
//
// The record is a plain value with no internal locking. Pricing queries never
// modify it; the finite-difference Greeks perturb private copies. If a single
// record is shared across goroutines, mutation through the setters must be
// synchronized by the caller.
type BSOption struct {
	// timeCurr is the valuation time as an epoch-second timestamp.
	timeCurr int64
	// timeMaturity is the expiry time as an epoch-second timestamp.
	timeMaturity int64
	// timeToMaturity is (timeMaturity - timeCurr) expressed in years.
	// It is recomputed whenever either time field changes.
	timeToMaturity float64
	// assetPrice is the underlying spot price in currency units.
	assetPrice float64
	// strike is the strike price in currency units.
	strike float64
	// interest is the annualized risk-free rate in decimal form (0.005 = 0.5%).
	interest float64
	// volatility is the annualized implied volatility in decimal form.
	volatility float64
	// payoutRate is a continuous dividend/payout yield in decimal form.
	payoutRate float64
}

// New creates a BSOption from contract and market parameters.
//
// Times are epoch-second timestamps; rates and volatility are decimals
// (e.g. 0.005 for 0.5%, 0.23 for 23%). No range validation is performed:
// degenerate inputs such as a zero strike or zero volatility flow through the
// formulas and produce IEEE special values rather than errors. Use Builder
// when required-field presence should be checked.
func New(timeCurr, timeMaturity int64, assetPrice, strike, interest, volatility, payoutRate float64) BSOption {
	return BSOption{
		timeCurr:       timeCurr,
		timeMaturity:   timeMaturity,
		timeToMaturity: utils.YearsBetween(timeCurr, timeMaturity),
		assetPrice:     assetPrice,
		strike:         strike,
		interest:       interest,
		volatility:     volatility,
		payoutRate:     payoutRate,
	}
}

// TimeCurr returns the valuation time as an epoch-second timestamp.
func (o BSOption) TimeCurr() int64 { return o.timeCurr }

// TimeMaturity returns the expiry time as an epoch-second timestamp.
func (o BSOption) TimeMaturity() int64 { return o.timeMaturity }

// TimeToMaturity returns the time to maturity as a fraction of a year.
// For instance, 45 days to maturity is roughly 0.1233.
func (o BSOption) TimeToMaturity() float64 { return o.timeToMaturity }

// AssetPrice returns the underlying spot price.
func (o BSOption) AssetPrice() float64 { return o.assetPrice }

// Strike returns the strike price.
func (o BSOption) Strike() float64 { return o.strike }

// Interest returns the annualized risk-free rate.
func (o BSOption) Interest() float64 { return o.interest }

// Volatility returns the annualized implied volatility.
func (o BSOption) Volatility() float64 { return o.volatility }

// PayoutRate returns the continuous payout yield.
func (o BSOption) PayoutRate() float64 { return o.payoutRate }

// SetTimeCurr updates the valuation time and recomputes the time to maturity
// in the same call.
func (o *BSOption) SetTimeCurr(timeCurr int64) {
	o.timeCurr = timeCurr
	o.timeToMaturity = utils.YearsBetween(o.timeCurr, o.timeMaturity)
}

// SetTimeMaturity updates the expiry time and recomputes the time to maturity
// in the same call.
func (o *BSOption) SetTimeMaturity(timeMaturity int64) {
	o.timeMaturity = timeMaturity
	o.timeToMaturity = utils.YearsBetween(o.timeCurr, o.timeMaturity)
}

// SetAssetPrice updates the underlying spot price.
func (o *BSOption) SetAssetPrice(assetPrice float64) { o.assetPrice = assetPrice }

// SetStrike updates the strike price.
func (o *BSOption) SetStrike(strike float64) { o.strike = strike }

// SetVolatility updates the implied volatility.
func (o *BSOption) SetVolatility(volatility float64) { o.volatility = volatility }

// SetPayoutRate updates the continuous payout yield.
func (o *BSOption) SetPayoutRate(payoutRate float64) { o.payoutRate = payoutRate }
