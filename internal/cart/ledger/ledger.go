// Package ledger implements cart state transitions as pure functions.
// Every function returns a fresh Cart value with the total recomputed
// from its items; the input cart is never modified.
package ledger

import "github.com/smesiteli/storefront/internal/cart/domain"

// CalculateTotal sums Price*Quantity over items. Empty input yields 0.
func CalculateTotal(items []domain.CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// AddItem adds one unit of the given product: an existing line's quantity
// grows by exactly 1, otherwise the item is appended with quantity 1.
// The Quantity field of the input item is ignored (single-click add).
func AddItem(cart domain.Cart, item domain.CartItem) domain.Cart {
	newItems := make([]domain.CartItem, len(cart.Items))
	copy(newItems, cart.Items)

	found := false
	for i := range newItems {
		if newItems[i].ProductID == item.ProductID {
			newItems[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		item.Quantity = 1
		newItems = append(newItems, item)
	}

	return domain.Cart{
		ID:    cart.ID,
		Items: newItems,
		Total: CalculateTotal(newItems),
	}
}

// RemoveItem drops the line matching productID. Unknown ids are a no-op.
func RemoveItem(cart domain.Cart, productID string) domain.Cart {
	newItems := make([]domain.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ProductID != productID {
			newItems = append(newItems, item)
		}
	}
	return domain.Cart{
		ID:    cart.ID,
		Items: newItems,
		Total: CalculateTotal(newItems),
	}
}

// UpdateQuantity replaces the matching line's quantity with the given
// absolute value. A quantity of zero or less removes the line; unknown
// ids are a no-op.
func UpdateQuantity(cart domain.Cart, productID string, quantity int) domain.Cart {
	if quantity <= 0 {
		return RemoveItem(cart, productID)
	}

	newItems := make([]domain.CartItem, len(cart.Items))
	copy(newItems, cart.Items)
	for i := range newItems {
		if newItems[i].ProductID == productID {
			newItems[i].Quantity = quantity
		}
	}
	return domain.Cart{
		ID:    cart.ID,
		Items: newItems,
		Total: CalculateTotal(newItems),
	}
}

// Clear returns the canonical empty cart.
func Clear() domain.Cart {
	return domain.Cart{
		Items: []domain.CartItem{},
		Total: 0,
	}
}
