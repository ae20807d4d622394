package reconciliation

import (
	"context"

	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/gateway"
)

// CompensationReport lists which legs were refunded
type CompensationReport struct {
	Refunded []string
	Failed   []string
}

// Compensator refunds the authorized legs of a commit that was not integral
type Compensator struct {
	gateway gateway.PaymentGateway
	logger  coreport.Logger
	metrics coreport.MetricsRecorder
}

// NewCompensator creates a new Compensator
func NewCompensator(gw gateway.PaymentGateway, logger coreport.Logger, metrics coreport.MetricsRecorder) *Compensator {
	return &Compensator{
		gateway: gw,
		logger:  logger,
		metrics: metrics,
	}
}

// Compensate issues one refund per leg. Failures are logged and counted and
// never stop the remaining legs.
func (c *Compensator) Compensate(ctx context.Context, txn *entity.Transaction, legs []entity.Leg) CompensationReport {
	var report CompensationReport

	for _, leg := range legs {
		fields := map[string]any{
			"token":         txn.Token,
			"buy_order":     leg.BuyOrder,
			"commerce_code": leg.CommerceCode,
			"amount":        entity.FormatAmount(leg.Amount),
		}
		c.logger.Info("Refunding authorized leg", fields)

		_, err := c.gateway.Refund(ctx, gateway.RefundRequest{
			Product:      txn.Product,
			Token:        txn.Token,
			BuyOrder:     leg.BuyOrder,
			CommerceCode: leg.CommerceCode,
			Amount:       leg.Amount,
		})
		if err != nil {
			errFields := errs.FieldsOf(err)
			for k, v := range fields {
				errFields[k] = v
			}
			c.logger.Error("Refund of authorized leg failed", errFields)
			c.metrics.RecordRefund(false)
			report.Failed = append(report.Failed, leg.BuyOrder)
			continue
		}

		c.logger.Info("Refund of authorized leg succeeded", fields)
		c.metrics.RecordRefund(true)
		report.Refunded = append(report.Refunded, leg.BuyOrder)
	}

	return report
}
