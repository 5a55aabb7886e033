package assistant

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Mention is a numeric amount with a unit, captured from free text.
// Mentions feed intent scoring and are never written into session slots.
type Mention struct {
	Amount int    `json:"amount"`
	Unit   string `json:"unit"`
}

// EntityBag holds the structured values extracted from a single message.
// A field left empty means the pattern did not match; extraction never fails.
type EntityBag struct {
	FirstName        string    `json:"firstName,omitempty"`
	LastName         string    `json:"lastName,omitempty"`
	Email            string    `json:"email,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	Service          string    `json:"service,omitempty"`
	BudgetRange      string    `json:"budgetRange,omitempty"`
	Timeline         string    `json:"timeline,omitempty"`
	PreferredDate    string    `json:"preferredDate,omitempty"`
	PreferredTime    string    `json:"preferredTime,omitempty"`
	PriceMentions    []Mention `json:"priceMentions,omitempty"`
	DurationMentions []Mention `json:"durationMentions,omitempty"`
}

// EntityExtractor extracts one entity type into the bag. Implementations are
// composed by Extractor in a fixed priority order and must be side-effect free.
type EntityExtractor interface {
	Name() string
	Extract(text string, bag *EntityBag)
}

// DateOrder controls how ambiguous numeric dates like 3/4/2026 are read.
type DateOrder string

const (
	DateOrderDMY DateOrder = "dmy"
	DateOrderMDY DateOrder = "mdy"
)

// Extractor runs all entity extractors against a raw message.
type Extractor struct {
	extractors []EntityExtractor
}

// NewExtractor builds the default extractor chain. The order is part of the
// contract: email runs before phone so digits inside an address are not
// misread as a phone number.
func NewExtractor(order DateOrder, now func() time.Time) *Extractor {
	if order != DateOrderMDY {
		order = DateOrderDMY
	}
	if now == nil {
		now = time.Now
	}
	return &Extractor{
		extractors: []EntityExtractor{
			emailExtractor{},
			phoneExtractor{},
			nameExtractor{},
			dateExtractor{order: order, now: now},
			timeExtractor{},
			serviceExtractor{},
			budgetExtractor{},
			timelineExtractor{},
			mentionExtractor{},
		},
	}
}

// Extract pulls every recognized entity out of rawText.
func (e *Extractor) Extract(rawText string) EntityBag {
	var bag EntityBag
	for _, ex := range e.extractors {
		ex.Extract(rawText, &bag)
	}
	return bag
}

// --- email ---

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

type emailExtractor struct{}

func (emailExtractor) Name() string { return "email" }

func (emailExtractor) Extract(text string, bag *EntityBag) {
	if match := emailPattern.FindString(text); match != "" {
		bag.Email = strings.ToLower(match)
	}
}

// --- phone ---

var phonePattern = regexp.MustCompile(`\+?\d[\d\s().\-/]{5,}\d`)

type phoneExtractor struct{}

func (phoneExtractor) Name() string { return "phone" }

func (phoneExtractor) Extract(text string, bag *EntityBag) {
	// Blank out email addresses so their digits are not mistaken for a number.
	text = emailPattern.ReplaceAllString(text, " ")
	for _, match := range phonePattern.FindAllString(text, -1) {
		if digitCount(match) >= 7 {
			bag.Phone = strings.TrimSpace(match)
			return
		}
	}
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// --- name ---

var (
	nameCuePattern = regexp.MustCompile(`(?:(?i:my name is|i am|i'm|ime mi je|zovem se|ja sam))\s+([A-ZČĆŠŽĐ][a-zčćšžđA-ZČĆŠŽĐ'\-]+(?:\s+[A-ZČĆŠŽĐ][a-zčćšžđA-ZČĆŠŽĐ'\-]+)?)`)
	bareNameLine   = regexp.MustCompile(`^[A-ZČĆŠŽĐ][a-zčćšžđ'\-]+(?:\s+[A-ZČĆŠŽĐ][a-zčćšžđ'\-]+)?$`)
)

type nameExtractor struct{}

func (nameExtractor) Name() string { return "name" }

func (nameExtractor) Extract(text string, bag *EntityBag) {
	candidate := ""
	if m := nameCuePattern.FindStringSubmatch(text); len(m) == 2 {
		candidate = m[1]
	} else if trimmed := strings.TrimSpace(text); bareNameLine.MatchString(trimmed) {
		candidate = trimmed
	}
	if candidate == "" {
		return
	}

	parts := strings.SplitN(candidate, " ", 2)
	bag.FirstName = parts[0]
	if len(parts) == 2 {
		bag.LastName = parts[1]
	}
}

// --- date ---

var monthsByPrefix = []struct {
	prefix string
	month  time.Month
}{
	{"jan", time.January},
	{"feb", time.February},
	{"mar", time.March},
	{"apr", time.April},
	{"may", time.May},
	{"maj", time.May},
	{"jun", time.June},
	{"jul", time.July},
	{"aug", time.August},
	{"avg", time.August},
	{"sep", time.September},
	{"okt", time.October},
	{"oct", time.October},
	{"nov", time.November},
	{"dec", time.December},
}

var weekdaysByName = []struct {
	name string
	day  time.Weekday
}{
	{"monday", time.Monday},
	{"ponedeljak", time.Monday},
	{"tuesday", time.Tuesday},
	{"utorak", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"sreda", time.Wednesday},
	{"thursday", time.Thursday},
	{"četvrtak", time.Thursday},
	{"cetvrtak", time.Thursday},
	{"friday", time.Friday},
	{"petak", time.Friday},
	{"saturday", time.Saturday},
	{"subota", time.Saturday},
	{"sunday", time.Sunday},
	{"nedelja", time.Sunday},
}

var (
	monthDayPattern    = regexp.MustCompile(`(?i)\b([a-zčćšžđ]{3,9})\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
	dayMonthPattern    = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\.?\s*([a-zčćšžđ]{3,9})\b`)
	numericDatePattern = regexp.MustCompile(`\b(\d{1,2})[./-](\d{1,2})(?:[./-](\d{2,4}))?\b`)
)

type dateExtractor struct {
	order DateOrder
	now   func() time.Time
}

func (dateExtractor) Name() string { return "date" }

func (d dateExtractor) Extract(text string, bag *EntityBag) {
	lower := strings.ToLower(text)

	if m := monthDayPattern.FindStringSubmatch(lower); len(m) == 3 {
		if month, ok := monthByName(m[1]); ok {
			if day, err := strconv.Atoi(m[2]); err == nil {
				bag.PreferredDate = d.normalize(0, month, day)
				return
			}
		}
	}

	if m := dayMonthPattern.FindStringSubmatch(lower); len(m) == 3 {
		if month, ok := monthByName(m[2]); ok {
			if day, err := strconv.Atoi(m[1]); err == nil {
				bag.PreferredDate = d.normalize(0, month, day)
				return
			}
		}
	}

	if m := numericDatePattern.FindStringSubmatch(lower); len(m) == 4 {
		first, _ := strconv.Atoi(m[1])
		second, _ := strconv.Atoi(m[2])
		day, month := first, second
		if d.order == DateOrderMDY {
			day, month = second, first
		}
		year := 0
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			if year < 100 {
				year += 2000
			}
		}
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			bag.PreferredDate = d.normalize(year, time.Month(month), day)
			return
		}
	}

	for _, wd := range weekdaysByName {
		if strings.Contains(lower, wd.name) {
			bag.PreferredDate = d.nextWeekday(wd.day)
			return
		}
	}
}

// normalize formats a date as YYYY-MM-DD, defaulting the year to the current
// one and rolling into next year when the date has already passed.
func (d dateExtractor) normalize(year int, month time.Month, day int) string {
	now := d.now()
	if year == 0 {
		year = now.Year()
		candidate := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if candidate.Before(today) {
			year++
		}
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

func (d dateExtractor) nextWeekday(target time.Weekday) string {
	now := d.now()
	offset := (int(target) - int(now.Weekday()) + 7) % 7
	if offset == 0 {
		offset = 7
	}
	next := now.AddDate(0, 0, offset)
	return next.Format("2006-01-02")
}

func monthByName(name string) (time.Month, bool) {
	for _, m := range monthsByPrefix {
		if strings.HasPrefix(name, m.prefix) {
			return m.month, true
		}
	}
	return 0, false
}

// --- time ---

var (
	ampmTimePattern = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	satiTimePattern = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(?:sati|sat|h)\b`)
	atTimePattern   = regexp.MustCompile(`(?i)\bat\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)
)

type timeExtractor struct{}

func (timeExtractor) Name() string { return "time" }

func (timeExtractor) Extract(text string, bag *EntityBag) {
	for _, re := range []*regexp.Regexp{ampmTimePattern, satiTimePattern, atTimePattern} {
		if m := re.FindStringSubmatch(text); len(m) > 0 {
			hour, _ := strconv.Atoi(m[1])
			minute := 0
			if len(m) > 2 && m[2] != "" {
				minute, _ = strconv.Atoi(m[2])
			}
			meridiem := ""
			if len(m) > 3 {
				meridiem = strings.ToLower(m[3])
			}
			if t := to24Hour(hour, minute, meridiem); t != "" {
				bag.PreferredTime = t
				return
			}
		}
	}
}

// to24Hour converts an hour/minute pair to HH:MM, applying am/pm rules:
// pm adds 12 except for 12pm, and 12am maps to 00.
func to24Hour(hour, minute int, meridiem string) string {
	if meridiem == "pm" && hour != 12 {
		hour += 12
	} else if meridiem == "am" && hour == 12 {
		hour = 0
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// --- service ---

// serviceTable maps cue keywords to canonical service ids. Scanned in order;
// the first matching keyword wins, so generic cues sit below specific ones.
var serviceTable = []struct {
	id       string
	keywords []string
}{
	{"web-development", []string{"web dev", "website", "web site", "veb sajt", "sajt", "web app", "webapp"}},
	{"mobile-development", []string{"mobile app", "mobilna aplikacija", "android", "ios app", "app development", "aplikacij"}},
	{"ecommerce", []string{"ecommerce", "e-commerce", "online shop", "online store", "webshop", "prodavnic"}},
	{"ui-ux-design", []string{"ui/ux", "ui design", "ux design", "user interface", "dizajn", "design"}},
	{"seo", []string{"seo", "search engine optimization", "optimizacij"}},
	{"digital-marketing", []string{"digital marketing", "marketing", "social media", "ads", "oglasavanje", "oglašavanje"}},
	{"branding", []string{"branding", "brending", "brand identity", "logo"}},
	{"consulting", []string{"consulting", "consultation", "konsultacij", "savetovanje"}},
	{"web-development", []string{"web"}},
}

type serviceExtractor struct{}

func (serviceExtractor) Name() string { return "service" }

func (serviceExtractor) Extract(text string, bag *EntityBag) {
	lower := strings.ToLower(text)
	for _, entry := range serviceTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				bag.Service = entry.id
				return
			}
		}
	}
}

// --- budget band ---

var budgetTable = []struct {
	id       string
	keywords []string
}{
	{"under-1k", []string{"under 1000", "under 1k", "less than 1000", "ispod 1000", "do 1000", "manje od 1000"}},
	{"1k-5k", []string{"1000-5000", "1k-5k", "od 1000 do 5000", "few thousand", "par hiljada"}},
	{"5k-10k", []string{"5000-10000", "5k-10k", "od 5000 do 10000"}},
	{"10k-plus", []string{"over 10000", "10k+", "more than 10000", "preko 10000", "vise od 10000", "više od 10000"}},
}

type budgetExtractor struct{}

func (budgetExtractor) Name() string { return "budget" }

func (budgetExtractor) Extract(text string, bag *EntityBag) {
	lower := strings.ToLower(text)
	for _, entry := range budgetTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				bag.BudgetRange = entry.id
				return
			}
		}
	}
}

// --- timeline band ---

var timelineTable = []struct {
	id       string
	keywords []string
}{
	{"asap", []string{"asap", "as soon as possible", "urgent", "hitno", "odmah", "right away"}},
	{"1-month", []string{"within a month", "one month", "mesec dana", "u roku od mesec"}},
	{"1-3-months", []string{"few months", "couple of months", "2-3 months", "nekoliko meseci", "dva-tri meseca"}},
	{"flexible", []string{"flexible", "fleksibil", "no rush", "nije hitno", "whenever"}},
}

type timelineExtractor struct{}

func (timelineExtractor) Name() string { return "timeline" }

func (timelineExtractor) Extract(text string, bag *EntityBag) {
	lower := strings.ToLower(text)
	for _, entry := range timelineTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				bag.Timeline = entry.id
				return
			}
		}
	}
}

// --- numeric mentions ---

var (
	priceMentionPattern    = regexp.MustCompile(`(?i)(\d+)\s*(€|eur|evra|usd|\$|rsd|din(?:ara)?|dollars?)`)
	durationMentionPattern = regexp.MustCompile(`(?i)(\d+)\s*(days?|weeks?|months?|dana|dan|nedelj[aei]|mesec[ai]?)`)
)

type mentionExtractor struct{}

func (mentionExtractor) Name() string { return "mentions" }

func (mentionExtractor) Extract(text string, bag *EntityBag) {
	for _, m := range priceMentionPattern.FindAllStringSubmatch(text, -1) {
		if amount, err := strconv.Atoi(m[1]); err == nil {
			bag.PriceMentions = append(bag.PriceMentions, Mention{Amount: amount, Unit: strings.ToLower(m[2])})
		}
	}
	for _, m := range durationMentionPattern.FindAllStringSubmatch(text, -1) {
		if amount, err := strconv.Atoi(m[1]); err == nil {
			bag.DurationMentions = append(bag.DurationMentions, Mention{Amount: amount, Unit: strings.ToLower(m[2])})
		}
	}
}
