package report

import (
	"regexp"
	"strings"
)

// Category is the revenue category of a revenue center.
type Category string

const (
	CategoryFood         Category = "food"
	CategoryBeverage     Category = "beverage"
	CategoryUnclassified Category = "unclassified"
)

// ServicePeriod is the time-of-day bucket a leaf row reports under.
type ServicePeriod string

const (
	ServiceMorning      ServicePeriod = "morning"
	ServiceMidday       ServicePeriod = "midday"
	ServiceEvening      ServicePeriod = "evening"
	ServiceUnclassified ServicePeriod = "unclassified"
)

// Keyword sets cover both the French RestoTrack labels and the English
// variants seen across export releases.
var (
	beverageKeywords = []string{"bar", "boiss", "bev", "drink", "cocktail", "bier", "beer", "vin", "wine"}
	foodKeywords     = []string{"rest", "nour", "food", "plat", "cuisine", "encas", "snack", "buffet", "boutique"}

	morningKeywords = []string{"matin", "morning", "breakfast", "petit-dej", "petit dej"}
	middayKeywords  = []string{"midi", "midday", "dejeuner", "déjeuner", "lunch"}
	eveningKeywords = []string{"soir", "nuit", "night", "evening", "dinner"}
)

var timeRangePattern = regexp.MustCompile(`(\d{1,2})[:hH](\d{2})\s*[-–—]\s*(\d{1,2})[:hH](\d{2})`)

// ClassifyCategory maps a revenue-center label to Food or Beverage.
// A beverage keyword wins only when no food keyword is present, so
// "Bar Snacks" resolves to Food.
func ClassifyCategory(label string) Category {
	lbl := strings.ToLower(label)
	if containsAny(lbl, beverageKeywords) && !containsAny(lbl, foodKeywords) {
		return CategoryBeverage
	}
	if containsAny(lbl, foodKeywords) {
		return CategoryFood
	}
	return CategoryUnclassified
}

// ClassifyService maps a row label to a service period. Labels may
// name the service outright or carry a time-range token such as
// "11:00-17:00"; ranges overlapping 11:00–17:00 are Midday and ranges
// overlapping 17:00–04:00 are Evening. Morning stays distinct here;
// folding it into Midday is the extractor's business rule.
func ClassifyService(label string) ServicePeriod {
	lbl := strings.ToLower(label)
	if containsAny(lbl, morningKeywords) {
		return ServiceMorning
	}
	if containsAny(lbl, middayKeywords) {
		return ServiceMidday
	}

	start, end, ok := parseTimeRange(lbl)
	if ok && overlapsWindow(start, end, 11*60, 17*60) {
		return ServiceMidday
	}
	if containsAny(lbl, eveningKeywords) {
		return ServiceEvening
	}
	if ok && overlapsWindow(start, end, 17*60, 28*60) {
		return ServiceEvening
	}
	return ServiceUnclassified
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// parseTimeRange extracts a hh:mm-hh:mm token as minutes since
// midnight; an end before the start wraps past midnight.
func parseTimeRange(label string) (start, end int, ok bool) {
	m := timeRangePattern.FindStringSubmatch(label)
	if m == nil {
		return 0, 0, false
	}
	start = atoiMinutes(m[1], m[2])
	end = atoiMinutes(m[3], m[4])
	if end <= start {
		end += 24 * 60
	}
	return start, end, true
}

func atoiMinutes(hh, mm string) int {
	h := 0
	for _, c := range hh {
		h = h*10 + int(c-'0')
	}
	m := 0
	for _, c := range mm {
		m = m*10 + int(c-'0')
	}
	return h*60 + m
}

// overlapsWindow reports whether [start,end) intersects the window,
// both expressed in minutes since midnight (windows past midnight use
// values above 24h).
func overlapsWindow(start, end, winStart, winEnd int) bool {
	if start < winEnd && end > winStart {
		return true
	}
	// Retry with the range shifted a day forward for wrapped windows.
	return start+24*60 < winEnd && end+24*60 > winStart
}
