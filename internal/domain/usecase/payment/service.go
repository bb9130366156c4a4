package payment

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/example/marketplace/internal/domain/error"
	coreport "github.com/example/marketplace/internal/domain/port/core"
	paymentport "github.com/example/marketplace/internal/domain/port/payment"
	"github.com/example/marketplace/internal/domain/port/persistence"
	"github.com/example/marketplace/internal/domain/port/usecase"
)

// tradeRefPrefix tags merchant trade references so webhooks can be routed
// back to the originating order
const tradeRefPrefix = "MKT"

// Service implements usecase.PaymentUseCase
type Service struct {
	uow          persistence.UnitOfWork
	orderRepo    persistence.OrderRepository
	txRepo       persistence.TransactionRepository
	provider     paymentport.ProviderClient
	signer       paymentport.Signer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates the payment service
func NewService(
	uow persistence.UnitOfWork,
	orderRepo persistence.OrderRepository,
	txRepo persistence.TransactionRepository,
	provider paymentport.ProviderClient,
	signer paymentport.Signer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		orderRepo:    orderRepo,
		txRepo:       txRepo,
		provider:     provider,
		signer:       signer,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

var _ usecase.PaymentUseCase = (*Service)(nil)

// tradeRef builds the composite merchant trade reference for an order
func tradeRef(orderID uint64, unix int64) string {
	return fmt.Sprintf("%s-%d-%d", tradeRefPrefix, orderID, unix)
}

// parseTradeRef extracts the order id from a merchant trade reference.
// Anything that does not match the MKT-<orderID>-<unix> shape is rejected;
// webhooks must fail closed on malformed references.
func parseTradeRef(ref string) (uint64, error) {
	parts := strings.Split(ref, "-")
	if len(parts) != 3 || parts[0] != tradeRefPrefix {
		return 0, errs.ErrMalformedTradeRef
	}
	orderID, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil || orderID == 0 {
		return 0, errs.ErrMalformedTradeRef
	}
	if _, err := strconv.ParseInt(parts[2], 10, 64); err != nil {
		return 0, errs.ErrMalformedTradeRef
	}
	return orderID, nil
}
