package assistant

import (
	"reflect"
	"testing"
	"time"
)

// fixedNow is a Tuesday.
func fixedNow() time.Time {
	return time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
}

func newTestExtractor() *Extractor {
	return NewExtractor(DateOrderDMY, fixedNow)
}

func TestExtractEmail(t *testing.T) {
	bag := newTestExtractor().Extract("You can reach me at Ana.Petrovic+work@Example.COM anytime")
	if bag.Email != "ana.petrovic+work@example.com" {
		t.Errorf("Email = %q", bag.Email)
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"international", "call me on +381 64 123 4567", "+381 64 123 4567"},
		{"dashed", "my number is 064-123-456", "064-123-456"},
		{"email digits ignored", "write to test123456789@mail.com", ""},
		{"too few digits", "room 12345", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bag := newTestExtractor().Extract(tt.input)
			if bag.Phone != tt.want {
				t.Errorf("Phone = %q, want %q", bag.Phone, tt.want)
			}
		})
	}
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFirst string
		wantLast  string
	}{
		{"english cue", "Hi, my name is Ana Petrovic", "Ana", "Petrovic"},
		{"contraction cue", "I'm Marko", "Marko", ""},
		{"serbian cue", "Zovem se Milica Jovanović", "Milica", "Jovanović"},
		{"bare name line", "Ana Petrovic", "Ana", "Petrovic"},
		{"lowercase not a name", "my name is nobody special", "", ""},
		{"sentence is not a bare name", "I need a new website for my shop", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bag := newTestExtractor().Extract(tt.input)
			if bag.FirstName != tt.wantFirst || bag.LastName != tt.wantLast {
				t.Errorf("got %q/%q, want %q/%q", bag.FirstName, bag.LastName, tt.wantFirst, tt.wantLast)
			}
		})
	}
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		order DateOrder
		want  string
	}{
		{"month day", "let's meet on March 15", DateOrderDMY, "2026-03-15"},
		{"month day ordinal", "how about april 3rd", DateOrderDMY, "2026-04-03"},
		{"past month rolls to next year", "maybe january 5", DateOrderDMY, "2027-01-05"},
		{"day month serbian", "moze 15. mart", DateOrderDMY, "2026-03-15"},
		{"numeric dmy", "does 3/4/2026 work", DateOrderDMY, "2026-04-03"},
		{"numeric mdy", "does 3/4/2026 work", DateOrderMDY, "2026-03-04"},
		{"numeric short year", "on 20.5.26", DateOrderDMY, "2026-05-20"},
		{"weekday", "see you on friday", DateOrderDMY, "2026-03-13"},
		{"weekday serbian", "vidimo se u petak", DateOrderDMY, "2026-03-13"},
		{"same weekday goes to next week", "tuesday works", DateOrderDMY, "2026-03-17"},
		{"no date", "I want a quote", DateOrderDMY, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bag := NewExtractor(tt.order, fixedNow).Extract(tt.input)
			if bag.PreferredDate != tt.want {
				t.Errorf("PreferredDate = %q, want %q", bag.PreferredDate, tt.want)
			}
		})
	}
}

func TestExtractTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"pm", "3pm works for me", "15:00"},
		{"pm with minutes", "around 3:30 PM", "15:30"},
		{"noon", "12pm is fine", "12:00"},
		{"midnight", "12am, strangely", "00:00"},
		{"serbian sati", "u 10 sati", "10:00"},
		{"hour suffix", "oko 18h", "18:00"},
		{"at clause", "at 9:15", "09:15"},
		{"no time", "sometime next week", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bag := newTestExtractor().Extract(tt.input)
			if bag.PreferredTime != tt.want {
				t.Errorf("PreferredTime = %q, want %q", bag.PreferredTime, tt.want)
			}
		})
	}
}

func TestTo24Hour(t *testing.T) {
	tests := []struct {
		hour, minute int
		meridiem     string
		want         string
	}{
		{3, 0, "pm", "15:00"},
		{12, 0, "pm", "12:00"},
		{12, 0, "am", "00:00"},
		{9, 15, "", "09:15"},
		{25, 0, "", ""},
		{10, 75, "", ""},
	}
	for _, tt := range tests {
		if got := to24Hour(tt.hour, tt.minute, tt.meridiem); got != tt.want {
			t.Errorf("to24Hour(%d, %d, %q) = %q, want %q", tt.hour, tt.minute, tt.meridiem, got, tt.want)
		}
	}
}

func TestExtractService(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"I need a website for my bakery", "web-development"},
		{"treba mi sajt", "web-development"},
		{"we want a mobile app", "mobile-development"},
		{"an online store with payments", "ecommerce"},
		{"help with seo please", "seo"},
		{"we need a new logo", "branding"},
		{"something with web technology", "web-development"},
		{"hello there", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			bag := newTestExtractor().Extract(tt.input)
			if bag.Service != tt.want {
				t.Errorf("Service = %q, want %q", bag.Service, tt.want)
			}
		})
	}
}

func TestExtractBudgetAndTimeline(t *testing.T) {
	bag := newTestExtractor().Extract("budget is 5000-10000 and we need it asap")
	if bag.BudgetRange != "5k-10k" {
		t.Errorf("BudgetRange = %q", bag.BudgetRange)
	}
	if bag.Timeline != "asap" {
		t.Errorf("Timeline = %q", bag.Timeline)
	}

	bag = newTestExtractor().Extract("ispod 1000, fleksibilni smo")
	if bag.BudgetRange != "under-1k" {
		t.Errorf("BudgetRange = %q", bag.BudgetRange)
	}
	if bag.Timeline != "flexible" {
		t.Errorf("Timeline = %q", bag.Timeline)
	}
}

func TestExtractMentions(t *testing.T) {
	bag := newTestExtractor().Extract("we have around 3000 EUR and 2 weeks")
	if !reflect.DeepEqual(bag.PriceMentions, []Mention{{Amount: 3000, Unit: "eur"}}) {
		t.Errorf("PriceMentions = %+v", bag.PriceMentions)
	}
	if !reflect.DeepEqual(bag.DurationMentions, []Mention{{Amount: 2, Unit: "weeks"}}) {
		t.Errorf("DurationMentions = %+v", bag.DurationMentions)
	}
}

func TestExtractCombinedMessage(t *testing.T) {
	bag := newTestExtractor().Extract("My name is Ana Petrovic, email ana@example.com, I need a website by March 15 at 3pm")
	want := EntityBag{
		FirstName:     "Ana",
		LastName:      "Petrovic",
		Email:         "ana@example.com",
		Service:       "web-development",
		PreferredDate: "2026-03-15",
		PreferredTime: "15:00",
	}
	if !reflect.DeepEqual(bag, want) {
		t.Errorf("bag = %+v, want %+v", bag, want)
	}
}
