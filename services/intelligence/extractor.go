package intelligence

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// Intent labels produced by the extractor.
const (
	IntentBooking      = "BOOKING"
	IntentPricing      = "PRICING"
	IntentAvailability = "AVAILABILITY"
	IntentServices     = "SERVICES"
	IntentCancellation = "CANCELLATION"
	IntentLocation     = "LOCATION"
	IntentGreeting     = "GREETING"
	IntentConfirmation = "CONFIRMATION"
	IntentGeneral      = "GENERAL_INQUIRY"
)

const similarityThreshold = 0.6

// intentPatterns is scanned in order; the first keyword hit wins. The
// vocabulary mixes English and Swahili so either language routes the same.
var intentPatterns = []struct {
	intent   string
	keywords []string
}{
	{IntentBooking, []string{"book", "appointment", "schedule", "reserve", "nataka kufanya", "nafanya appointment"}},
	{IntentPricing, []string{"price", "cost", "how much", "bei", "pesa", "gharama"}},
	{IntentAvailability, []string{"available", "free", "open", "when", "muda", "saa ngapi"}},
	{IntentServices, []string{"service", "what do you do", "offer", "huduma", "unafanya nini"}},
	{IntentCancellation, []string{"cancel", "reschedule", "sitaki", "badilisha"}},
	{IntentLocation, []string{"where", "location", "address", "directions", "wapi", "mahali"}},
	{IntentGreeting, []string{"hello", "hi", "hey", "good morning", "good afternoon", "habari", "mambo", "niaje"}},
	{IntentConfirmation, []string{"yes", "confirm", "proceed", "sawa", "ndiyo", "ndio"}},
}

// serviceSynonyms maps a canonical service keyword to the phrases customers
// actually type, including Swahili terms.
var serviceSynonyms = map[string][]string{
	"cut":       {"haircut", "hair cut", "trim", "cutting", "kukata", "kata nywele"},
	"style":     {"styling", "blow dry", "blowout", "set", "mpangilio"},
	"braids":    {"braiding", "plaits", "cornrows", "box braids", "twist", "nyuzi"},
	"relaxer":   {"straightening", "relaxing", "chemical", "rebonding", "keratin"},
	"treatment": {"conditioning", "deep conditioning", "hair mask", "hot oil", "matibabu"},
	"manicure":  {"mani", "nail polish", "nail art", "makucha"},
	"pedicure":  {"pedi", "foot care", "toe nails"},
}

// staffSynonyms maps canonical staff names to their informal variations.
var staffSynonyms = map[string][]string{
	"catherine": {"cate", "cathy", "mama catherine", "owner"},
	"njeri":     {"mama njeri"},
	"ann":       {"annie"},
	"rachael":   {"rachel", "raquel"},
}

// timeBuckets maps a coarse daypart phrase to the hourly slots it covers.
var timeBuckets = map[string][]string{
	"morning":   {"9:00 AM", "10:00 AM", "11:00 AM"},
	"afternoon": {"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM"},
	"evening":   {"5:00 PM", "6:00 PM"},
	"asubuhi":   {"9:00 AM", "10:00 AM", "11:00 AM"},
	"mchana":    {"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM"},
	"jioni":     {"5:00 PM", "6:00 PM"},
}

var swahiliMarkers = []string{
	"habari", "mambo", "niaje", "bei", "pesa", "gharama", "huduma",
	"wapi", "mahali", "sawa", "ndiyo", "ndio", "sitaki", "badilisha",
	"asubuhi", "mchana", "jioni", "kesho", "leo", "nataka",
}

var (
	specificTimeRegex = regexp.MustCompile(`(?i)\d{1,2}:?\d{0,2}\s*(am|pm)`)
	dateWordRegex     = regexp.MustCompile(`(?i)(today|tomorrow|leo|kesho|monday|tuesday|wednesday|thursday|friday|saturday|sunday)`)
	kenyanPhoneRegex  = regexp.MustCompile(`(\+254|0)[7-9]\d{8}`)
	nameLikeRegex     = regexp.MustCompile(`^[a-zA-Z\s]+$`)
)

func isNameLike(s string) bool {
	return nameLikeRegex.MatchString(s)
}

// Candidate is a ranked extraction hit.
type Candidate struct {
	Value string  `json:"value"`
	Score float64 `json:"score"`
}

// Extraction is the full analysis of one message. Extract is a pure
// function: identical input always yields an identical Extraction.
type Extraction struct {
	Intent     string
	Confidence float64
	Services   []Candidate // ranked best-first
	Staff      []Candidate
	Times      []string // normalized specific times, e.g. "2:00 PM"
	DayParts   []string // bucket names: morning, jioni, ...
	Dates      []string // raw date words: tomorrow, monday, ...
	Language   string   // "en" or "sw"
}

// DetectIntent classifies a message against the fixed keyword tables.
func DetectIntent(message string) (string, float64) {
	lower := strings.ToLower(message)
	for _, p := range intentPatterns {
		for _, kw := range p.keywords {
			if strings.Contains(lower, kw) {
				return p.intent, 0.8
			}
		}
	}
	return IntentGeneral, 0.5
}

// Extract runs intent classification plus entity extraction over a message.
func Extract(message string) Extraction {
	lower := strings.ToLower(message)
	intent, confidence := DetectIntent(message)

	ex := Extraction{
		Intent:     intent,
		Confidence: confidence,
		Services:   extractServiceCandidates(lower),
		Staff:      extractStaffCandidates(lower),
		Language:   detectLanguage(lower),
	}

	for _, m := range specificTimeRegex.FindAllString(message, -1) {
		ex.Times = append(ex.Times, normalizeClock(m))
	}
	for bucket := range timeBuckets {
		if strings.Contains(lower, bucket) {
			ex.DayParts = append(ex.DayParts, bucket)
		}
	}
	sort.Strings(ex.DayParts)
	for _, m := range dateWordRegex.FindAllString(lower, -1) {
		ex.Dates = append(ex.Dates, m)
	}
	return ex
}

// extractServiceCandidates returns every synonym hit ranked by similarity.
// Callers take the head of the list but can surface alternatives for
// disambiguation.
func extractServiceCandidates(lower string) []Candidate {
	var out []Candidate
	for key, synonyms := range serviceSynonyms {
		best := 0.0
		if strings.Contains(lower, key) {
			best = similarity(key, lower)
		}
		for _, syn := range synonyms {
			if strings.Contains(lower, syn) {
				if s := similarity(syn, lower); s > best {
					best = s
				}
			}
		}
		if best > 0 {
			out = append(out, Candidate{Value: key, Score: best})
		}
	}
	sortCandidates(out)
	return out
}

func extractStaffCandidates(lower string) []Candidate {
	var out []Candidate
	for name, variations := range staffSynonyms {
		matched := strings.Contains(lower, name)
		for _, v := range variations {
			if strings.Contains(lower, v) {
				matched = true
			}
		}
		if matched {
			out = append(out, Candidate{Value: name, Score: 0.8})
		}
	}
	sortCandidates(out)
	return out
}

// sortCandidates orders by score descending, then value for a stable result.
func sortCandidates(cs []Candidate) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Score != cs[j].Score {
			return cs[i].Score > cs[j].Score
		}
		return cs[i].Value < cs[j].Value
	})
}

func detectLanguage(lower string) string {
	for _, marker := range swahiliMarkers {
		if strings.Contains(lower, marker) {
			return "sw"
		}
	}
	return "en"
}

// normalizeClock renders a loose time expression ("2pm", "10:30am") in the
// canonical "2:00 PM" slot format.
func normalizeClock(expr string) string {
	clean := strings.ToUpper(strings.TrimSpace(expr))
	meridiem := "AM"
	if strings.Contains(clean, "PM") {
		meridiem = "PM"
	}
	clean = strings.TrimSpace(strings.NewReplacer("AM", "", "PM", "").Replace(clean))
	hour, minute := clean, "00"
	if i := strings.Index(clean, ":"); i >= 0 {
		hour, minute = clean[:i], clean[i+1:]
	}
	if len(minute) != 2 {
		minute = "00"
	}
	return strings.TrimLeft(hour, "0") + ":" + minute + " " + meridiem
}

// ResolveDate turns a date word into a concrete "YYYY-MM-DD" relative to now.
// Weekday names resolve to the next occurrence, never today.
func ResolveDate(word string, now time.Time) string {
	lower := strings.ToLower(word)
	switch lower {
	case "today", "leo":
		return now.Format("2006-01-02")
	case "tomorrow", "kesho":
		return now.AddDate(0, 0, 1).Format("2006-01-02")
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.EqualFold(wd.String(), lower) {
			days := (int(wd) - int(now.Weekday()) + 7) % 7
			if days == 0 {
				days = 7
			}
			return now.AddDate(0, 0, days).Format("2006-01-02")
		}
	}
	return now.Format("2006-01-02")
}

// BucketTimes returns the slot times covered by a daypart phrase.
func BucketTimes(daypart string) []string {
	return timeBuckets[strings.ToLower(daypart)]
}

// similarity is a normalized edit-distance ratio in [0,1].
func similarity(a, b string) float64 {
	longer, shorter := a, b
	if len(b) > len(a) {
		longer, shorter = b, a
	}
	if len(longer) == 0 {
		return 1.0
	}
	common := len(longer) - levenshtein(longer, shorter)
	return float64(common) / float64(len(longer))
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for i := range prev {
		prev[i] = i
	}
	for j := 1; j <= len(rb); j++ {
		curr[0] = j
		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[i] = min3(curr[i-1]+1, prev[i]+1, prev[i-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(ra)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
