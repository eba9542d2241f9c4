package business

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/azhagan2/retail-pos-pipeline/src/common/models"
)

const (
	refundProbability = 0.2
	cancelProbability = 0.1

	minItems = 1
	maxItems = 5

	minQuantity = 1
	maxQuantity = 3
)

// Generator produces synthetic retail POS transactions. All randomness
// comes from the injected source, so seeded generators are deterministic.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng, now: time.Now}
}

// GenerateTransaction assembles one transaction: 1-5 distinct catalog
// products with quantities 1-3, a 20% chance of a refund sub-record and a
// 10% chance of one canceled item. The refund amount keys off the total
// before the cancellation adjustment; TotalAmount reflects the total after it.
func (g *Generator) GenerateTransaction() (*models.Transaction, error) {
	storeID := storeIDs[g.rng.Intn(len(storeIDs))]
	city, err := CityForStore(storeID)
	if err != nil {
		return nil, err
	}

	transactionID := fmt.Sprintf("txn_%d", 10000+g.rng.Intn(90000))
	timestamp := g.now().UTC().Format(time.RFC3339Nano)

	numItems := minItems + g.rng.Intn(maxItems-minItems+1)
	items := g.sampleItems(numItems)

	totalAmount := 0.0
	for _, item := range items {
		totalAmount += item.Subtotal()
	}

	paymentMethod := paymentMethods[g.rng.Intn(len(paymentMethods))]

	var refund *models.Refund
	if g.rng.Float64() < refundProbability {
		fraction := 0.1 + 0.9*g.rng.Float64()
		refund = &models.Refund{
			TransactionID: transactionID,
			RefundAmount:  round2(totalAmount * fraction),
			RefundMethod:  paymentMethod,
			Timestamp:     g.now().UTC().Format(time.RFC3339Nano),
		}
	}

	var cancelItem *models.LineItem
	if g.rng.Float64() < cancelProbability && len(items) > 0 {
		cancelItem = items[g.rng.Intn(len(items))]
		cancelItem.Canceled = true
		totalAmount -= cancelItem.Subtotal()
	}

	return &models.Transaction{
		StoreID:       storeID,
		City:          city,
		TransactionID: transactionID,
		Timestamp:     timestamp,
		Items:         items,
		TotalAmount:   round2(totalAmount),
		PaymentMethod: paymentMethod,
		Refund:        refund,
		CancelItem:    cancelItem,
	}, nil
}

// sampleItems picks n distinct catalog products and assigns each a quantity.
func (g *Generator) sampleItems(n int) []*models.LineItem {
	order := g.rng.Perm(len(products))

	items := make([]*models.LineItem, 0, n)
	for _, idx := range order[:n] {
		items = append(items, &models.LineItem{
			ProductID: products[idx].ProductID,
			Price:     products[idx].Price,
			Quantity:  minQuantity + g.rng.Intn(maxQuantity-minQuantity+1),
		})
	}
	return items
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
