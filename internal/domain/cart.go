package domain

// CartItem is one entry of an incoming checkout request.
type CartItem struct {
	ID       ProductID
	Quantity int64
}

// LineItem is a cart entry resolved against the catalog.
type LineItem struct {
	Currency    string
	ProductName string
	Image       string
	UnitAmount  int64
	Quantity    int64
}

// BuildLineItems resolves every cart item against the catalog, keeping input order.
// A single unknown id fails the whole cart and no line items are returned.
func BuildLineItems(catalog *Catalog, items []CartItem) ([]LineItem, error) {
	if len(items) == 0 {
		return nil, NewEmptyCartError()
	}

	lineItems := make([]LineItem, 0, len(items))
	for _, item := range items {
		product, ok := catalog.Lookup(item.ID)
		if !ok {
			return nil, NewUnknownProductError(string(item.ID))
		}

		quantity := item.Quantity
		switch {
		case quantity == 0:
			quantity = 1
		case quantity < 0:
			return nil, NewInvalidInputError("Invalid quantity for product: " + string(item.ID))
		}

		lineItems = append(lineItems, LineItem{
			Currency:    product.Currency,
			ProductName: product.Name,
			Image:       product.Image,
			UnitAmount:  product.UnitAmount,
			Quantity:    quantity,
		})
	}

	return lineItems, nil
}
