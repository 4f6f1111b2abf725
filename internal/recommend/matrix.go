// Trendline - Content Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trendline

package recommend

import (
	"sort"
)

// interactionKey identifies a deduplicated interaction record.
type interactionKey struct {
	userID      string
	itemID      string
	age         int
	contentType ContentType
	genre       string
}

// interactionRecord is the strongest rating observed for a key.
type interactionRecord struct {
	key    interactionKey
	rating float64
}

// Matrix is the dense user-by-item rating matrix and its per-user metadata.
// It is built once and never mutated.
type Matrix struct {
	users     []string
	items     []string
	userIndex map[string]int
	itemIndex map[string]int

	// ratings[u][i] is the deduplicated rating, 0 when absent.
	ratings [][]float64

	// ages[u] is the first observed age of user u.
	ages []int

	// topGenre[u] is the genre with the highest summed rating for user u.
	topGenre []string

	records int
}

// dedupeInteractions collapses raw events to one record per key holding the max rating.
// Records are returned in first-seen order.
func dedupeInteractions(events []Event) []interactionRecord {
	index := make(map[interactionKey]int, len(events))
	records := make([]interactionRecord, 0, len(events))

	for i := range events {
		ev := &events[i]
		key := interactionKey{
			userID:      ev.UserID,
			itemID:      ev.ItemID,
			age:         ev.Age,
			contentType: ev.ContentType,
			genre:       ev.Genre,
		}
		r := matrixRating(ev)
		if pos, ok := index[key]; ok {
			if r > records[pos].rating {
				records[pos].rating = r
			}
			continue
		}
		index[key] = len(records)
		records = append(records, interactionRecord{key: key, rating: r})
	}
	return records
}

// BuildMatrix deduplicates the interaction log and pivots it into a dense matrix.
// Users and items are indexed in ascending id order.
func BuildMatrix(events []Event) (*Matrix, error) {
	if len(events) == 0 {
		return nil, NewInvalidDataFormatError("interaction log is empty")
	}

	records := dedupeInteractions(events)

	userSet := make(map[string]struct{})
	itemSet := make(map[string]struct{})
	for i := range records {
		userSet[records[i].key.userID] = struct{}{}
		itemSet[records[i].key.itemID] = struct{}{}
	}

	m := &Matrix{
		users:   sortedKeys(userSet),
		items:   sortedKeys(itemSet),
		records: len(records),
	}
	m.userIndex = indexOf(m.users)
	m.itemIndex = indexOf(m.items)

	m.ratings = make([][]float64, len(m.users))
	backing := make([]float64, len(m.users)*len(m.items))
	for u := range m.ratings {
		m.ratings[u] = backing[u*len(m.items) : (u+1)*len(m.items) : (u+1)*len(m.items)]
	}

	m.ages = make([]int, len(m.users))
	seenAge := make([]bool, len(m.users))
	genreSums := make([]map[string]float64, len(m.users))

	for i := range records {
		rec := &records[i]
		u := m.userIndex[rec.key.userID]
		it := m.itemIndex[rec.key.itemID]

		// The same (user, item) pair can appear under several keys when
		// age or catalog fields drift in the log; the cell keeps the max.
		if rec.rating > m.ratings[u][it] {
			m.ratings[u][it] = rec.rating
		}
		if !seenAge[u] {
			m.ages[u] = rec.key.age
			seenAge[u] = true
		}
		if genreSums[u] == nil {
			genreSums[u] = make(map[string]float64)
		}
		genreSums[u][rec.key.genre] += rec.rating
	}

	m.topGenre = make([]string, len(m.users))
	for u, sums := range genreSums {
		m.topGenre[u] = argmaxGenre(sums)
	}

	return m, nil
}

// argmaxGenre returns the genre with the highest sum; ties go to the
// lexicographically smallest genre.
func argmaxGenre(sums map[string]float64) string {
	genres := make([]string, 0, len(sums))
	for g := range sums {
		genres = append(genres, g)
	}
	sort.Strings(genres)

	best := ""
	bestSum := 0.0
	for i, g := range genres {
		if i == 0 || sums[g] > bestSum {
			best, bestSum = g, sums[g]
		}
	}
	return best
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func indexOf(ids []string) map[string]int {
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}
	return idx
}

// NumUsers returns the number of matrix rows.
func (m *Matrix) NumUsers() int { return len(m.users) }

// NumItems returns the number of matrix columns.
func (m *Matrix) NumItems() int { return len(m.items) }

// Records returns the number of deduplicated interaction records.
func (m *Matrix) Records() int { return m.records }

// UserIndex returns the row index of a user.
func (m *Matrix) UserIndex(userID string) (int, bool) {
	u, ok := m.userIndex[userID]
	return u, ok
}

// Rating returns M[user, item], or 0 when either id is unknown.
func (m *Matrix) Rating(userID, itemID string) float64 {
	u, ok := m.userIndex[userID]
	if !ok {
		return 0
	}
	it, ok := m.itemIndex[itemID]
	if !ok {
		return 0
	}
	return m.ratings[u][it]
}

// TopGenre returns the favorite genre of a user.
func (m *Matrix) TopGenre(userID string) (string, bool) {
	u, ok := m.userIndex[userID]
	if !ok {
		return "", false
	}
	return m.topGenre[u], true
}

// Age returns the first observed age of a user.
func (m *Matrix) Age(userID string) (int, bool) {
	u, ok := m.userIndex[userID]
	if !ok {
		return 0, false
	}
	return m.ages[u], true
}

// watched returns the set of item column indexes user u has a record for.
func (m *Matrix) watched(u int) map[int]struct{} {
	set := make(map[int]struct{})
	for i, r := range m.ratings[u] {
		if r > 0 {
			set[i] = struct{}{}
		}
	}
	return set
}
