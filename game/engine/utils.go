package engine

import (
	"fmt"
	"sort"
	"strconv"
)

// defaultSpaceName returns "GO" for index 0 and the index as text otherwise
func defaultSpaceName(index int) string {
	if index == GoIndex {
		return GoName
	}
	return strconv.Itoa(index)
}

func sortedIndices(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for index := range set {
		out = append(out, index)
	}
	sort.Ints(out)
	return out
}

// CheckInvariants verifies that every owned flag matches exactly one holder,
// that GO is never owned or rented, and that no balance is negative.
func (e *GameEngine) CheckInvariants() error {
	holders := make(map[int]string)
	for _, p := range e.players {
		if p.Balance < 0 {
			return fmt.Errorf("player %q has negative balance %d", p.Name, p.Balance)
		}
		if p.Position < 0 || p.Position >= len(e.spaces) {
			return fmt.Errorf("player %q is off the board at %d", p.Name, p.Position)
		}
		for _, index := range p.OwnedSpaces() {
			if other, dup := holders[index]; dup {
				return fmt.Errorf("space %d is held by both %q and %q", index, other, p.Name)
			}
			holders[index] = p.Name
		}
	}

	for _, space := range e.spaces {
		_, held := holders[space.Index]
		if space.IsOwned != held {
			return fmt.Errorf("space %d owned flag is %t but held=%t", space.Index, space.IsOwned, held)
		}
		if space.IsGo() && (space.IsOwned || space.Rent != 0) {
			return fmt.Errorf("GO must be unowned with zero rent, got owned=%t rent=%d", space.IsOwned, space.Rent)
		}
	}
	return nil
}

// NetWorth returns a player's balance plus the purchase price of their spaces
func (e *GameEngine) NetWorth(name string) (int, error) {
	p, err := e.lookup(name)
	if err != nil {
		return 0, err
	}
	worth := p.Balance
	for _, index := range p.OwnedSpaces() {
		worth += e.spaces[index].PurchasePrice()
	}
	return worth, nil
}

// TotalBoardCost returns the price of buying every purchasable space
func TotalBoardCost(spaces []Space) int {
	total := 0
	for _, space := range spaces {
		if !space.IsGo() {
			total += space.PurchasePrice()
		}
	}
	return total
}

// RentRange returns the lowest and highest rent among purchasable spaces
func RentRange(spaces []Space) (int, int) {
	low, high := -1, 0
	for _, space := range spaces {
		if space.IsGo() {
			continue
		}
		if low == -1 || space.Rent < low {
			low = space.Rent
		}
		if space.Rent > high {
			high = space.Rent
		}
	}
	if low == -1 {
		low = 0
	}
	return low, high
}
