package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem")

// Item is an immutable snapshot of one order line: the product reference,
// the quantity and the unit price at the time of purchase. Later product
// price changes never affect existing orders.
type Item struct {
	productID kernel.UUID
	name      string
	quantity  int
	unitPrice int64

	guard guard.ConstructorGuard
}

// NewItem creates a validated order line snapshot.
// The unit price is in minor currency units and captured at purchase time.
func NewItem(productID kernel.UUID, name string, quantity int, unitPrice int64) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("product name")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"unit price", fmt.Errorf("%d is negative", unitPrice),
		)
	}

	return Item{
		productID: productID,
		name:      name,
		quantity:  quantity,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the referenced product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name captured at purchase time.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit at purchase time, in minor currency units.
func (i Item) UnitPrice() int64 {
	return i.unitPrice
}

// Subtotal returns quantity times unit price.
func (i Item) Subtotal() int64 {
	return i.unitPrice * int64(i.quantity)
}
