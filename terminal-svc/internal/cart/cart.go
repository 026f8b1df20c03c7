// Package cart holds the operator's pending, unsent selections for one
// order in progress. A Cart is owned by a single screen and is never
// persisted; it is not safe for concurrent use.
package cart

import "restopos/terminal-svc/internal/domain"

type Line struct {
	Food     domain.Food `json:"food"`
	Quantity int         `json:"quantity"`
}

// Subtotal uses the food's current price; nothing has been snapshotted yet.
func (l Line) Subtotal() domain.Money {
	return l.Food.Price * domain.Money(l.Quantity)
}

type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add increments the line for food.ID or appends a new line with quantity 1.
func (c *Cart) Add(food domain.Food) {
	if i := c.index(food.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, Line{Food: food, Quantity: 1})
}

// Remove decrements the line, deleting it when it reaches zero.
// Unknown ids are ignored.
func (c *Cart) Remove(foodID int) {
	i := c.index(foodID)
	if i < 0 {
		return
	}
	if c.lines[i].Quantity > 1 {
		c.lines[i].Quantity--
		return
	}
	c.delete(i)
}

func (c *Cart) RemoveAll(foodID int) {
	if i := c.index(foodID); i >= 0 {
		c.delete(i)
	}
}

// Subtract takes the given quantities off their lines, deleting lines that
// reach zero. Whatever was added after lines was taken stays in the cart.
func (c *Cart) Subtract(lines []Line) {
	for _, l := range lines {
		i := c.index(l.Food.ID)
		if i < 0 {
			continue
		}
		if c.lines[i].Quantity > l.Quantity {
			c.lines[i].Quantity -= l.Quantity
			continue
		}
		c.delete(i)
	}
}

func (c *Cart) ToPayload() []domain.ItemPayload {
	payload := make([]domain.ItemPayload, 0, len(c.lines))
	for _, l := range c.lines {
		payload = append(payload, domain.ItemPayload{FoodID: l.Food.ID, Quantity: l.Quantity})
	}
	return payload
}

// Lines returns a copy in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Quantity(foodID int) int {
	if i := c.index(foodID); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

func (c *Cart) index(foodID int) int {
	for i, l := range c.lines {
		if l.Food.ID == foodID {
			return i
		}
	}
	return -1
}

func (c *Cart) delete(i int) {
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}
