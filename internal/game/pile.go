package game

import "card-crawl/internal/card"

// pile is an ordered sequence of cards. Cards leave one pile only by being
// handed to another, so each card has exactly one owner.
type pile struct {
	cards []card.Card
}

func newPile(cards []card.Card) pile {
	p := pile{cards: make([]card.Card, len(cards))}
	copy(p.cards, cards)
	return p
}

func (p *pile) Len() int { return len(p.cards) }

// Cards returns a copy of the pile's contents, front first.
func (p *pile) Cards() []card.Card {
	out := make([]card.Card, len(p.cards))
	copy(out, p.cards)
	return out
}

func (p *pile) push(c card.Card) {
	p.cards = append(p.cards, c)
}

// popFront removes and returns the first card.
func (p *pile) popFront() (card.Card, bool) {
	if len(p.cards) == 0 {
		return card.Card{}, false
	}
	c := p.cards[0]
	p.cards = p.cards[1:]
	return c, true
}

func (p *pile) removeAt(i int) card.Card {
	c := p.cards[i]
	p.cards = append(p.cards[:i:i], p.cards[i+1:]...)
	return c
}

// moveAllTo appends every card to dst in order and empties p.
func (p *pile) moveAllTo(dst *pile) {
	dst.cards = append(dst.cards, p.cards...)
	p.cards = nil
}

// indexOf returns the position of the first card of kind k, or -1.
func (p *pile) indexOf(k card.Kind) int {
	for i, c := range p.cards {
		if c.Kind == k {
			return i
		}
	}
	return -1
}
