package domain

// TicketLine is one selected ticket type with its quantity.
type TicketLine struct {
	TicketType   string `json:"ticket_type"`
	Quantity     int    `json:"quantity"`
	PricePerUnit int64  `json:"price_per_unit"`
}

// MerchandiseLine is one selected merchandise item. Merchandise is capped by
// its own available quantity and does not occupy boat seats.
type MerchandiseLine struct {
	TripMerchandiseID int     `json:"trip_merchandise_id"`
	VariantOption     *string `json:"variant_option,omitempty"`
	Quantity          int     `json:"quantity"`
	PricePerUnit      int64   `json:"price_per_unit"`
}

// Selection is the in-progress ticket/merchandise pick for one trip+boat
// pairing. All quantity changes go through the Set/Add methods, which cap the
// requested value at what per-type inventory and boat capacity allow instead
// of failing. Lines driven to zero are removed, never left as placeholders.
type Selection struct {
	TripID      int               `json:"trip_id"`
	BoatID      int               `json:"boat_id"`
	Tickets     []TicketLine      `json:"tickets"`
	Merchandise []MerchandiseLine `json:"merchandise"`
}

func NewSelection(tripID, boatID int) *Selection {
	return &Selection{TripID: tripID, BoatID: boatID}
}

// CurrentQuantity returns the selected quantity for a ticket type.
func (s *Selection) CurrentQuantity(ticketType string) int {
	for _, line := range s.Tickets {
		if line.TicketType == ticketType {
			return line.Quantity
		}
	}

	return 0
}

// TotalTickets is the number of seats the selection occupies.
func (s *Selection) TotalTickets() int {
	var total int
	for _, line := range s.Tickets {
		total += line.Quantity
	}

	return total
}

// CanAddTicket reports whether one more ticket of the given type fits within
// both the per-type remaining inventory and the boat's remaining capacity.
func (s *Selection) CanAddTicket(ticketType string, boat *TripBoatAvailability) bool {
	pricing, ok := boat.PricingFor(ticketType)
	if !ok {
		return false
	}

	return s.CurrentQuantity(ticketType) < pricing.Remaining &&
		s.TotalTickets() < boat.RemainingCapacity
}

// SetTicketQuantity applies a requested quantity for a ticket type, capping it
// at the maximum the per-type inventory and the boat's remaining capacity
// allow, accounting for every other selected line. It returns the quantity
// actually applied. A resulting quantity of zero removes the line.
func (s *Selection) SetTicketQuantity(ticketType string, quantity int, boat *TripBoatAvailability) int {
	pricing, ok := boat.PricingFor(ticketType)
	if !ok {
		return s.CurrentQuantity(ticketType)
	}

	if quantity < 0 {
		quantity = 0
	}
	if quantity > pricing.Remaining {
		quantity = pricing.Remaining
	}

	seatsTakenByOthers := s.TotalTickets() - s.CurrentQuantity(ticketType)
	if maxBySeats := boat.RemainingCapacity - seatsTakenByOthers; quantity > maxBySeats {
		quantity = maxBySeats
	}
	if quantity < 0 {
		quantity = 0
	}

	if quantity == 0 {
		s.removeTicketLine(ticketType)
		return 0
	}

	for i := range s.Tickets {
		if s.Tickets[i].TicketType == ticketType {
			s.Tickets[i].Quantity = quantity
			s.Tickets[i].PricePerUnit = pricing.Price
			return quantity
		}
	}

	s.Tickets = append(s.Tickets, TicketLine{
		TicketType:   ticketType,
		Quantity:     quantity,
		PricePerUnit: pricing.Price,
	})

	return quantity
}

// AddTicket increments the quantity for a ticket type by one, capped the same
// way as SetTicketQuantity. It returns the resulting quantity.
func (s *Selection) AddTicket(ticketType string, boat *TripBoatAvailability) int {
	return s.SetTicketQuantity(ticketType, s.CurrentQuantity(ticketType)+1, boat)
}

func (s *Selection) removeTicketLine(ticketType string) {
	for i, line := range s.Tickets {
		if line.TicketType == ticketType {
			s.Tickets = append(s.Tickets[:i], s.Tickets[i+1:]...)
			return
		}
	}
}

// SetMerchandiseQuantity applies a requested quantity for a merchandise item
// and variant, capped by the quantity available for that combination. It
// returns the quantity actually applied; zero removes the line.
func (s *Selection) SetMerchandiseQuantity(merch *TripMerchandise, variant *string, quantity int) int {
	available := merch.AvailableFor(variant)

	if quantity < 0 {
		quantity = 0
	}
	if quantity > available {
		quantity = available
	}

	if quantity == 0 {
		s.removeMerchandiseLine(merch.ID, variant)
		return 0
	}

	for i := range s.Merchandise {
		if s.Merchandise[i].TripMerchandiseID == merch.ID && equalVariant(s.Merchandise[i].VariantOption, variant) {
			s.Merchandise[i].Quantity = quantity
			s.Merchandise[i].PricePerUnit = merch.Price
			return quantity
		}
	}

	s.Merchandise = append(s.Merchandise, MerchandiseLine{
		TripMerchandiseID: merch.ID,
		VariantOption:     variant,
		Quantity:          quantity,
		PricePerUnit:      merch.Price,
	})

	return quantity
}

func (s *Selection) removeMerchandiseLine(merchID int, variant *string) {
	for i, line := range s.Merchandise {
		if line.TripMerchandiseID == merchID && equalVariant(line.VariantOption, variant) {
			s.Merchandise = append(s.Merchandise[:i], s.Merchandise[i+1:]...)
			return
		}
	}
}

func equalVariant(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

// PricingItems projects the selection into pricing lines, tickets first, in
// selection order.
func (s *Selection) PricingItems() []PricingItem {
	items := make([]PricingItem, 0, len(s.Tickets)+len(s.Merchandise))

	for _, line := range s.Tickets {
		items = append(items, PricingItem{Quantity: line.Quantity, PricePerUnit: line.PricePerUnit})
	}

	for _, line := range s.Merchandise {
		items = append(items, PricingItem{Quantity: line.Quantity, PricePerUnit: line.PricePerUnit})
	}

	return items
}
