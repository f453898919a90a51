package generator

import "alcyxob/fitness-coach/internal/domain"

// sessionSequences cycles Push/Pull/Legs and only adds Cardio and Core once the whole week is used.
var sessionSequences = map[int][]domain.Category{
	1: {domain.CategoryPush},
	2: {domain.CategoryPush, domain.CategoryPull},
	3: {domain.CategoryPush, domain.CategoryPull, domain.CategoryLegs},
	4: {domain.CategoryPush, domain.CategoryPull, domain.CategoryLegs, domain.CategoryPush},
	5: {domain.CategoryPush, domain.CategoryPull, domain.CategoryLegs, domain.CategoryPush, domain.CategoryPull},
	6: {domain.CategoryPush, domain.CategoryPull, domain.CategoryLegs, domain.CategoryPush, domain.CategoryPull, domain.CategoryLegs},
	7: {domain.CategoryPush, domain.CategoryPull, domain.CategoryLegs, domain.CategoryCardio, domain.CategoryPush, domain.CategoryPull, domain.CategoryCore},
}

// SessionSequence returns the session types for a week with numDays training days.
// It returns nil outside 1..7.
func SessionSequence(numDays int) []domain.Category {
	seq, ok := sessionSequences[numDays]
	if !ok {
		return nil
	}
	return append([]domain.Category(nil), seq...)
}
