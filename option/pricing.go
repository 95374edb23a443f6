package option

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Finite-difference bump sizes. These are fixed rather than adaptive: small
// enough to approximate the derivative, large enough to stay clear of
// floating-point cancellation.
const (
	// assetPriceBump is the spot perturbation used for gamma, in currency units.
	assetPriceBump = 0.001
	// volatilityBump is the volatility perturbation used for vega.
	volatilityBump = 0.0001
	// vegaScale normalizes the vega difference to a one-point (1%) vol move.
	vegaScale = 0.01
	// secondsPerDay is the valuation-time shift used for theta.
	secondsPerDay = 86_400
)

// Results pairs the call and put legs of a single computed quantity.
type Results struct {
	Call float64
	Put  float64
}

// Values returns the Black-Scholes call and put values.
//
// The call is the closed form
//
//	S·e^(−q·T)·N(d1) − K·e^(−r·T)·N(d2)
//
// and the put follows from put-call parity:
//
//	put = call − S·e^(−q·T) + K·e^(−r·T)
func Values(o BSOption) Results {
	discountedAsset := o.assetPrice * math.Exp(-o.divContinuous()*o.timeToMaturity)
	discountedStrike := o.strike * math.Exp(-o.rContinuous()*o.timeToMaturity)

	call := discountedAsset*normCDF(o.d1()) - discountedStrike*normCDF(o.d2())
	put := call - discountedAsset + discountedStrike

	return Results{Call: call, Put: put}
}

// Deltas returns the closed-form call and put deltas:
//
//	call delta = e^(−q·T)·N(d1)
//	put delta  = call delta − e^(−q·T)
func Deltas(o BSOption) Results {
	payoutFactor := math.Exp(-o.divContinuous() * o.timeToMaturity)
	call := payoutFactor * normCDF(o.d1())

	return Results{Call: call, Put: call - payoutFactor}
}

// Gammas returns the call and put gammas, computed as the forward difference
// of delta under an assetPriceBump spot move. Call and put gamma coincide
// analytically; the two finite differences may disagree by bump-induced
// rounding only.
func Gammas(o BSOption) Results {
	bumped := o
	bumped.SetAssetPrice(o.assetPrice + assetPriceBump)

	base := Deltas(o)
	prime := Deltas(bumped)

	return Results{
		Call: (prime.Call - base.Call) / assetPriceBump,
		Put:  (prime.Put - base.Put) / assetPriceBump,
	}
}

// Vegas returns the call and put vegas: the value change under a
// volatilityBump move, normalized to a one-point vol move. Vega is shared
// between call and put under Black-Scholes, so both legs report the same
// bumped-call difference.
func Vegas(o BSOption) Results {
	bumped := o
	bumped.SetVolatility(o.volatility + volatilityBump)

	vega := (Values(bumped).Call - Values(o).Call) / vegaScale

	return Results{Call: vega, Put: vega}
}

// Thetas returns the call and put thetas: the signed value change (bumped
// minus original) when the valuation time moves one day forward. Note the
// sign convention: this is the value change per day forward, not the
// sign-flipped "decay per day" sometimes quoted.
func Thetas(o BSOption) Results {
	bumped := o
	bumped.SetTimeCurr(o.timeCurr + secondsPerDay)

	base := Values(o)
	prime := Values(bumped)

	return Results{Call: prime.Call - base.Call, Put: prime.Put - base.Put}
}

// CallValue returns the option's Black-Scholes call value.
func (o BSOption) CallValue() float64 { return Values(o).Call }

// PutValue returns the option's Black-Scholes put value.
func (o BSOption) PutValue() float64 { return Values(o).Put }

// CallDelta returns the option's call delta.
func (o BSOption) CallDelta() float64 { return Deltas(o).Call }

// PutDelta returns the option's put delta.
func (o BSOption) PutDelta() float64 { return Deltas(o).Put }

// CallGamma returns the option's call gamma.
func (o BSOption) CallGamma() float64 { return Gammas(o).Call }

// PutGamma returns the option's put gamma.
func (o BSOption) PutGamma() float64 { return Gammas(o).Put }

// CallVega returns the option's call vega.
func (o BSOption) CallVega() float64 { return Vegas(o).Call }

// PutVega returns the option's put vega.
func (o BSOption) PutVega() float64 { return Vegas(o).Put }

// CallTheta returns the option's call theta.
func (o BSOption) CallTheta() float64 { return Thetas(o).Call }

// PutTheta returns the option's put theta.
func (o BSOption) PutTheta() float64 { return Thetas(o).Put }

// ---------------------------------------------------------------------------
// closed-form helpers (unexported)
// ---------------------------------------------------------------------------

// d1 = [ln(S/K) + (r − q + σ²/2)·T] / (σ·√T)
func (o BSOption) d1() float64 {
	rates := o.rContinuous() - o.divContinuous() + o.volatility*o.volatility/2

	num := math.Log(o.assetPrice/o.strike) + rates*o.timeToMaturity
	den := o.volatility * math.Sqrt(o.timeToMaturity)

	return num / den
}

// d2 = d1 − σ·√T
func (o BSOption) d2() float64 {
	return o.d1() - o.volatility*math.Sqrt(o.timeToMaturity)
}

// rContinuous converts the simple annual rate to continuous compounding.
func (o BSOption) rContinuous() float64 {
	return math.Log1p(o.interest)
}

// divContinuous converts the simple payout yield to continuous compounding.
func (o BSOption) divContinuous() float64 {
	return math.Log1p(o.payoutRate)
}

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// normCDF is the standard normal cumulative distribution function.
func normCDF(x float64) float64 {
	return stdNormal.CDF(x)
}
