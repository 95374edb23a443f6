// Package server exposes the option calculator over HTTP. It is plumbing
// only: requests map one-to-one onto the option package's constructor and
// queries, and numeric outputs are forwarded unchanged.
package server

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mfg-nyu/opcalc/option"
)

// PriceRequest carries the option parameters. Pointer fields distinguish
// "absent" from zero so that missing required inputs are reported by name.
type PriceRequest struct {
	TimeCurr     *int64   `json:"time_curr"`
	TimeMaturity *int64   `json:"time_maturity"`
	AssetPrice   *float64 `json:"asset_price"`
	Strike       *float64 `json:"strike"`
	Interest     *float64 `json:"interest"`
	Volatility   *float64 `json:"volatility"`
	PayoutRate   *float64 `json:"payout_rate"`
}

// Number is a float64 that serializes non-finite values as JSON strings
// ("+Inf", "-Inf", "NaN") instead of failing to marshal. Degenerate inputs
// legitimately produce such values and they must reach the caller.
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.AppendQuote(nil, strconv.FormatFloat(f, 'g', -1, 64)), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

// PriceResponse returns the derived time to maturity and all ten queries.
type PriceResponse struct {
	TimeToMaturity Number `json:"time_to_maturity"`
	CallValue      Number `json:"call_value"`
	PutValue       Number `json:"put_value"`
	CallDelta      Number `json:"call_delta"`
	PutDelta       Number `json:"put_delta"`
	CallGamma      Number `json:"call_gamma"`
	PutGamma       Number `json:"put_gamma"`
	CallVega       Number `json:"call_vega"`
	PutVega        Number `json:"put_vega"`
	CallTheta      Number `json:"call_theta"`
	PutTheta       Number `json:"put_theta"`
}

// Handler serves the option pricing routes.
type Handler struct {
	log *logrus.Logger
}

// NewHandler creates a Handler logging to log.
func NewHandler(log *logrus.Logger) *Handler {
	return &Handler{log: log}
}

// RegisterRoutes binds the handler to router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/healthz", h.Health)

	api := router.Group("/api/v1/options")
	{
		api.POST("/price", h.Price)
	}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Price builds an option from the request body and returns its value and
// Greeks for both call and put.
func (h *Handler) Price(c *gin.Context) {
	var req PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	builder := option.NewBuilder()
	if req.TimeCurr != nil {
		builder.WithCurrentTime(*req.TimeCurr)
	}
	if req.TimeMaturity != nil {
		builder.WithMaturityTime(*req.TimeMaturity)
	}
	if req.AssetPrice != nil {
		builder.WithAssetPrice(*req.AssetPrice)
	}
	if req.Strike != nil {
		builder.WithStrike(*req.Strike)
	}
	if req.Interest != nil {
		builder.WithInterest(*req.Interest)
	}
	if req.Volatility != nil {
		builder.WithVolatility(*req.Volatility)
	}
	if req.PayoutRate != nil {
		builder.WithPayoutRate(*req.PayoutRate)
	}

	opt, err := builder.Finalize()
	if err != nil {
		var missing *option.MissingStepError
		if errors.As(err, &missing) {
			h.log.WithField("step", missing.Step).Warn("price request incomplete")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "missing_step": missing.Step})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	values := option.Values(*opt)
	deltas := option.Deltas(*opt)
	gammas := option.Gammas(*opt)
	vegas := option.Vegas(*opt)
	thetas := option.Thetas(*opt)

	c.JSON(http.StatusOK, PriceResponse{
		TimeToMaturity: Number(opt.TimeToMaturity()),
		CallValue:      Number(values.Call),
		PutValue:       Number(values.Put),
		CallDelta:      Number(deltas.Call),
		PutDelta:       Number(deltas.Put),
		CallGamma:      Number(gammas.Call),
		PutGamma:       Number(gammas.Put),
		CallVega:       Number(vegas.Call),
		PutVega:        Number(vegas.Put),
		CallTheta:      Number(thetas.Call),
		PutTheta:       Number(thetas.Put),
	})
}
