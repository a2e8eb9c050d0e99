// Package dice provides numeric dice with up to 255 sides and
// functions for working with pools of rolls.
package dice

import "math/rand/v2"

// maxRoll caps roll arithmetic so exploding dice and buffed pools stay
// within a single byte's range, matching a physical counter die.
const maxRoll = 255

// Die is a single die with a user-defined number of sides.
type Die struct {
	Sides int
}

// NewDie creates a die with the given number of sides, up to 255.
// Panics if sides is out of range; that is a programming error, not a
// game condition.
func NewDie(sides int) Die {
	if sides < 1 || sides > maxRoll {
		panic("dice: a die must have between 1 and 255 sides")
	}
	return Die{Sides: sides}
}

// Roll rolls the die and returns the face-up value.
func (d Die) Roll() int {
	return 1 + rand.IntN(d.Sides)
}

// RollIntoPool rolls the die multiple times and returns the results as
// a DicePool.
func (d Die) RollIntoPool(times int) *DicePool {
	p := NewDicePool()
	for i := 0; i < times; i++ {
		p.AddRoll(d.Roll())
	}
	return p
}

// RollExplodeOn rolls the die once and explodes (rolls again,
// recurrently) each time the trigger value comes up. The total is
// capped at 255 so exploding results still fit in a pool.
func (d Die) RollExplodeOn(trigger int) int {
	total := d.Roll()
	if total == trigger {
		total = saturatingAdd(total, d.RollExplodeOn(trigger))
	}
	return total
}

// RollExploding is the common case where the die explodes on its
// maximum value (6 on a d6, 20 on a d20, and so on).
func (d Die) RollExploding() int {
	return d.RollExplodeOn(d.Sides)
}

func saturatingAdd(a, b int) int {
	if a+b > maxRoll {
		return maxRoll
	}
	return a + b
}

func saturatingSub(a, b int) int {
	if a-b < 0 {
		return 0
	}
	return a - b
}
