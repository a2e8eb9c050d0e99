package dice

import "sort"

// DicePool is a pool of multiple rolls of a single die type (d6, d20,
// etc.).
type DicePool struct {
	rolls []int
}

// NewDicePool creates a new, empty pool.
func NewDicePool() *DicePool {
	return &DicePool{}
}

// PoolFrom creates a pool from existing roll values.
func PoolFrom(rolls []int) *DicePool {
	p := &DicePool{rolls: make([]int, len(rolls))}
	copy(p.rolls, rolls)
	return p
}

// Results returns a copy of all rolls in the pool.
func (p *DicePool) Results() []int {
	out := make([]int, len(p.rolls))
	copy(out, p.rolls)
	return out
}

// AddRoll adds a roll to the pool.
func (p *DicePool) AddRoll(roll int) {
	p.rolls = append(p.rolls, roll)
}

// Sum returns the sum of all rolls in the pool.
func (p *DicePool) Sum() int {
	total := 0
	for _, r := range p.rolls {
		total += r
	}
	return total
}

// Len returns the number of rolls in the pool.
func (p *DicePool) Len() int { return len(p.rolls) }

// Buff adds a bonus to all rolls in the pool, capped at 255.
func (p *DicePool) Buff(bonus int) *DicePool {
	buffed := make([]int, len(p.rolls))
	for i, r := range p.rolls {
		buffed[i] = saturatingAdd(r, bonus)
	}
	return &DicePool{rolls: buffed}
}

// Nerf reduces all rolls in the pool by the penalty, with a minimum of
// zero.
func (p *DicePool) Nerf(penalty int) *DicePool {
	nerfed := make([]int, len(p.rolls))
	for i, r := range p.rolls {
		nerfed[i] = saturatingSub(r, penalty)
	}
	return &DicePool{rolls: nerfed}
}

// Range returns the minimum and maximum rolls in the pool, or false if
// the pool is empty.
func (p *DicePool) Range() (min, max int, ok bool) {
	if len(p.rolls) == 0 {
		return 0, 0, false
	}
	min, max = p.rolls[0], p.rolls[0]
	for _, r := range p.rolls[1:] {
		if r < min {
			min = r
		}
		if r > max {
			max = r
		}
	}
	return min, max, true
}

// CountRoll counts how many times a particular value was rolled.
func (p *DicePool) CountRoll(value int) int {
	count := 0
	for _, r := range p.rolls {
		if r == value {
			count++
		}
	}
	return count
}

// TakeHighest returns a new pool holding only the highest-scoring
// count rolls. A count of zero yields an empty pool; a count beyond
// the pool size yields an unchanged copy.
func (p *DicePool) TakeHighest(count int) *DicePool {
	switch {
	case count == 0:
		return NewDicePool()
	case count < p.Len():
		best := p.Results()
		sort.Sort(sort.Reverse(sort.IntSlice(best)))
		return &DicePool{rolls: best[:count]}
	default:
		return PoolFrom(p.rolls)
	}
}

// TakeLowest returns a new pool holding only the lowest-scoring count
// rolls, with the same edge behavior as TakeHighest.
func (p *DicePool) TakeLowest(count int) *DicePool {
	switch {
	case count == 0:
		return NewDicePool()
	case count < p.Len():
		worst := p.Results()
		sort.Ints(worst)
		return &DicePool{rolls: worst[:count]}
	default:
		return PoolFrom(p.rolls)
	}
}

// RerollIf rerolls any result that meets the predicate, using the
// given die.
func (p *DicePool) RerollIf(d Die, predicate func(int) bool) *DicePool {
	rerolled := make([]int, len(p.rolls))
	for i, r := range p.rolls {
		if predicate(r) {
			rerolled[i] = d.Roll()
		} else {
			rerolled[i] = r
		}
	}
	return &DicePool{rolls: rerolled}
}

// CountSuccessUsing counts the rolls that meet a success predicate.
func (p *DicePool) CountSuccessUsing(predicate func(int) bool) int {
	count := 0
	for _, r := range p.rolls {
		if predicate(r) {
			count++
		}
	}
	return count
}

// CountSuccessOver counts the rolls strictly over the threshold.
func (p *DicePool) CountSuccessOver(threshold int) int {
	return p.CountSuccessUsing(func(r int) bool { return r > threshold })
}
