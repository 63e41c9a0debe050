package teams

import "fmt"

// Shuffle splits items into two random teams, ignoring roles and skill.
// The input slice is left untouched.
func Shuffle[T any](items []T, rnd Rand) ([]T, []T, error) {
	if len(items) != 2*Size {
		return nil, nil, fmt.Errorf("%w: need %d, got %d", ErrTeamSize, 2*Size, len(items))
	}
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:Size:Size], shuffled[Size:], nil
}
