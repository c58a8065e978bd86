package match

import (
	"strings"
	"unicode"

	"Fynd-Backend/domain"
	"Fynd-Backend/entities"
	"Fynd-Backend/pkg/geo"
)

// Signal weights. The four signals sum to 100:
//
//	category  30  same item_type on both sides, all or nothing
//	keywords  35  token overlap ratio between title+description sets
//	location  25  full credit within 1 km, linear decay, nothing past 50 km
//	date      10  full credit within 2 days, linear decay, nothing past 30 days
//
// A reason tag is recorded for any signal contributing at least 5 points.
const (
	categoryWeight = 30.0
	keywordsWeight = 35.0
	locationWeight = 25.0
	dateWeight     = 10.0

	locationFullCreditKm = 1.0
	locationCutoffKm     = 50.0

	dateFullCreditDays = 2.0
	dateCutoffDays     = 30.0

	reasonThreshold = 5.0
)

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "near": {}, "was": {},
	"this": {}, "that": {}, "have": {}, "has": {}, "had": {}, "its": {},
	"lost": {}, "found": {}, "item": {}, "please": {}, "around": {},
	"from": {}, "about": {}, "some": {}, "very": {},
}

// ScoreMatch computes the compatibility score between a lost and a found item
// together with the contributing reason tags. It is a pure function of the two
// items' attributes: identical inputs always produce identical output.
func ScoreMatch(lost, found *entities.Item) (float64, []string) {
	score := 0.0
	reasons := make([]string, 0, 4)

	if lost.ItemType != "" && lost.ItemType == found.ItemType {
		score += categoryWeight
		reasons = append(reasons, domain.MatchReasonCategory)
	}

	if kw := keywordsWeight * overlapRatio(tokenize(lost), tokenize(found)); kw > 0 {
		score += kw
		if kw >= reasonThreshold {
			reasons = append(reasons, domain.MatchReasonKeywords)
		}
	}

	if loc := locationScore(lost, found); loc > 0 {
		score += loc
		if loc >= reasonThreshold {
			reasons = append(reasons, domain.MatchReasonLocation)
		}
	}

	if dt := dateScore(lost, found); dt > 0 {
		score += dt
		if dt >= reasonThreshold {
			reasons = append(reasons, domain.MatchReasonDate)
		}
	}

	if score > 100 {
		score = 100
	}
	return score, reasons
}

func tokenize(item *entities.Item) map[string]struct{} {
	tokens := make(map[string]struct{})
	text := strings.ToLower(item.Title + " " + item.Description)

	for _, word := range strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if len(word) < 3 {
			continue
		}
		if _, stop := stopwords[word]; stop {
			continue
		}
		tokens[word] = struct{}{}
	}
	return tokens
}

// overlapRatio measures shared tokens against the smaller set, so a short
// title is not drowned out by a verbose description on the other side.
func overlapRatio(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	smaller, larger := a, b
	if len(b) < len(a) {
		smaller, larger = b, a
	}

	shared := 0
	for token := range smaller {
		if _, ok := larger[token]; ok {
			shared++
		}
	}

	return float64(shared) / float64(len(smaller))
}

// locationScore contributes nothing, not a penalty, when either side has no
// coordinates.
func locationScore(lost, found *entities.Item) float64 {
	if lost.Latitude == nil || lost.Longitude == nil ||
		found.Latitude == nil || found.Longitude == nil {
		return 0
	}

	distance := geo.Distance(*lost.Latitude, *lost.Longitude, *found.Latitude, *found.Longitude)
	switch {
	case distance <= locationFullCreditKm:
		return locationWeight
	case distance >= locationCutoffKm:
		return 0
	default:
		return locationWeight * (locationCutoffKm - distance) / (locationCutoffKm - locationFullCreditKm)
	}
}

func dateScore(lost, found *entities.Item) float64 {
	elapsed := lost.CreatedAt.Sub(found.CreatedAt)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	days := elapsed.Hours() / 24

	switch {
	case days <= dateFullCreditDays:
		return dateWeight
	case days >= dateCutoffDays:
		return 0
	default:
		return dateWeight * (dateCutoffDays - days) / (dateCutoffDays - dateFullCreditDays)
	}
}
