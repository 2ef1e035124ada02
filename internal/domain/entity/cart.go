package entity

import "github.com/shopspring/decimal"

// CartLine línea del carrito. La clave es (ProductID, Size).
// Price se captura al agregar y no se refresca con el catálogo.
// Product es un snapshot opcional para mostrar; no se persiste.
type CartLine struct {
	ProductID uint
	Quantity  int
	Size      string
	Price     decimal.Decimal
	Product   *Product
}

// Matches indica si la línea corresponde a la clave (productID, size).
func (l CartLine) Matches(productID uint, size string) bool {
	return l.ProductID == productID && l.Size == size
}

// Subtotal devuelve Price * Quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart colección ordenada de líneas (orden de inserción = orden de visualización).
// Invariante: ninguna línea tiene Quantity <= 0 y no hay dos líneas con la misma clave.
type Cart struct {
	Lines []CartLine
}

// Add suma la cantidad a la línea existente o agrega una nueva al final.
// Devuelve false si la línea entrante no es válida (cantidad <= 0).
func (c *Cart) Add(line CartLine) bool {
	if line.Quantity <= 0 {
		return false
	}
	for i := range c.Lines {
		if c.Lines[i].Matches(line.ProductID, line.Size) {
			c.Lines[i].Quantity += line.Quantity
			return true
		}
	}
	c.Lines = append(c.Lines, line)
	return true
}

// Remove elimina la línea con la clave dada; devuelve false si no existía.
func (c *Cart) Remove(productID uint, size string) bool {
	for i := range c.Lines {
		if c.Lines[i].Matches(productID, size) {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// SetQuantity fija la cantidad; quantity <= 0 equivale a Remove.
// Devuelve false si no existía la línea.
func (c *Cart) SetQuantity(productID uint, size string, quantity int) bool {
	if quantity <= 0 {
		return c.Remove(productID, size)
	}
	for i := range c.Lines {
		if c.Lines[i].Matches(productID, size) {
			c.Lines[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Clear vacía el carrito.
func (c *Cart) Clear() {
	c.Lines = nil
}

// TotalItems suma de cantidades.
func (c *Cart) TotalItems() int {
	total := 0
	for _, l := range c.Lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice suma de cantidad * precio capturado.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
