package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/afeayo2/Econmmerce/internal/config"
	"github.com/afeayo2/Econmmerce/internal/domain/order"
	"github.com/afeayo2/Econmmerce/internal/domain/product"
	"github.com/afeayo2/Econmmerce/internal/domain/repository"
	"github.com/afeayo2/Econmmerce/internal/infrastructure/http/paystack"
	"github.com/afeayo2/Econmmerce/pkg/logger"
)

// Gateway initializes a payment session with the external provider.
type Gateway interface {
	Initialize(ctx context.Context, email string, amount float64, reference, callbackURL string) (*paystack.Authorization, error)
}

// ErrGateway marks failures of the external payment provider so handlers
// can report them as upstream trouble rather than a bad request.
var ErrGateway = errors.New("payment gateway failure")

type Service struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
	gateway  Gateway
	bank     config.BankConfig
	callback string
	log      logger.Logger
}

func NewService(
	products repository.ProductRepository,
	orders repository.OrderRepository,
	gateway Gateway,
	bank config.BankConfig,
	callbackBaseURL string,
	log logger.Logger,
) *Service {
	return &Service{
		products: products,
		orders:   orders,
		gateway:  gateway,
		bank:     bank,
		callback: callbackBaseURL,
		log:      log,
	}
}

// CartItem is one requested line. Price is whatever the client sent and is
// never trusted; totals come from the catalog.
type CartItem struct {
	ProductID     string               `json:"product_id"`
	Quantity      int                  `json:"quantity"`
	Price         float64              `json:"price,omitempty"`
	Customization *order.Customization `json:"customization,omitempty"`
}

type Command struct {
	CustomerID    string
	CustomerName  string
	Email         string
	Address       string
	Phone         string
	Items         []CartItem
	PaymentMethod order.PaymentMethod
}

// BankDetails is the static transfer instruction returned for
// bank-transfer checkouts.
type BankDetails struct {
	BankName      string  `json:"bank_name"`
	AccountNumber string  `json:"account_number"`
	AccountName   string  `json:"account_name"`
	Amount        float64 `json:"amount"`
}

type Result struct {
	Order       *order.Order `json:"order"`
	PaymentURL  string       `json:"payment_url,omitempty"`
	BankDetails *BankDetails `json:"bank_details,omitempty"`
}

// Checkout validates the cart against the catalog, reserves stock, persists
// a pending order and, for gateway payments, opens a payment session. The
// pending order is written before the gateway call so a provider outage
// still leaves an auditable order.
func (s *Service) Checkout(ctx context.Context, cmd Command) (*Result, error) {
	if len(cmd.Items) == 0 {
		return nil, order.ErrEmptyCart
	}
	if !cmd.PaymentMethod.Valid() {
		return nil, order.ErrInvalidPaymentMethod
	}

	lines := make([]order.LineItem, 0, len(cmd.Items))
	var total float64

	for _, item := range cmd.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity for product %s", order.ErrMissingField, item.ProductID)
		}

		p, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("load product %s: %w", item.ProductID, err)
		}
		if p == nil {
			return nil, fmt.Errorf("%w: %s", product.ErrNotFound, item.ProductID)
		}
		if p.Stock < item.Quantity {
			return nil, fmt.Errorf("%w: %s", product.ErrInsufficientStock, p.Name)
		}
		if p.RequiresCustomization() && !item.Customization.Complete() {
			return nil, fmt.Errorf("%w: %s", product.ErrCustomizationRequired, p.Name)
		}

		// Snapshot name and price from the catalog; the client-submitted
		// price is ignored.
		lines = append(lines, order.LineItem{
			ProductID:     p.ID,
			Name:          p.Name,
			Price:         p.Price,
			Quantity:      item.Quantity,
			Customization: item.Customization,
		})
		total += p.Price * float64(item.Quantity)
	}

	if err := s.reserveStock(ctx, lines); err != nil {
		return nil, err
	}

	o, err := order.New(uuid.NewString(), cmd.CustomerID, cmd.CustomerName, cmd.Email,
		cmd.Address, cmd.Phone, lines, total, cmd.PaymentMethod)
	if err != nil {
		s.releaseStock(ctx, lines)
		return nil, err
	}

	if err := s.orders.Save(ctx, o); err != nil {
		s.releaseStock(ctx, lines)
		return nil, fmt.Errorf("save order: %w", err)
	}

	s.log.Info("order created",
		logger.String("order_id", o.ID),
		logger.Float64("total", o.TotalAmount),
		logger.String("payment_method", string(o.PaymentMethod)),
	)

	if cmd.PaymentMethod == order.PaymentMethodBankTransfer {
		return &Result{
			Order: o,
			BankDetails: &BankDetails{
				BankName:      s.bank.Name,
				AccountNumber: s.bank.AccountNumber,
				AccountName:   s.bank.AccountName,
				Amount:        o.TotalAmount,
			},
		}, nil
	}

	reference := fmt.Sprintf("order_%s", o.ID)
	callbackURL := fmt.Sprintf("%s/customer/verify/%s", s.callback, o.ID)

	auth, err := s.gateway.Initialize(ctx, o.Email, o.TotalAmount, reference, callbackURL)
	if err != nil {
		// The order stays pending with no gateway reference; the customer
		// may re-attempt checkout, which creates a new order.
		return nil, fmt.Errorf("%w: initialize payment for order %s: %v", ErrGateway, o.ID, err)
	}

	o.GatewayRef = auth.Reference
	if err := s.orders.Save(ctx, o); err != nil {
		return nil, fmt.Errorf("save gateway reference: %w", err)
	}

	return &Result{Order: o, PaymentURL: auth.AuthorizationURL}, nil
}

// reserveStock decrements stock item by item; on a failed reservation it
// restocks what was already taken and fails the checkout.
func (s *Service) reserveStock(ctx context.Context, lines []order.LineItem) error {
	for i, line := range lines {
		ok, err := s.products.DecrementStock(ctx, line.ProductID, line.Quantity)
		if err == nil && !ok {
			err = fmt.Errorf("%w: %s", product.ErrInsufficientStock, line.Name)
		}
		if err != nil {
			s.releaseStock(ctx, lines[:i])
			return err
		}
	}
	return nil
}

func (s *Service) releaseStock(ctx context.Context, lines []order.LineItem) {
	for _, line := range lines {
		if err := s.products.IncrementStock(ctx, line.ProductID, line.Quantity); err != nil {
			s.log.Error("restock failed",
				logger.String("product_id", line.ProductID),
				logger.Int("quantity", line.Quantity),
				logger.Error(err),
			)
		}
	}
}
