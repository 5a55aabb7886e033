package assistant

import (
	"fmt"
	"strings"
)

// serviceDisplayNames maps canonical service ids to human-readable names
// used when interpolating templates.
var serviceDisplayNames = map[string]string{
	"web-development":    "web development",
	"mobile-development": "mobile app development",
	"ui-ux-design":       "UI/UX design",
	"digital-marketing":  "digital marketing",
	"seo":                "SEO",
	"ecommerce":          "e-commerce",
	"branding":           "branding",
	"consulting":         "consulting",
}

// responseTemplates are the canned English replies per intent. The final text
// is localized through the translation pipeline, whose curated dictionary
// covers these exact phrases.
var responseTemplates = map[Intent]string{
	IntentGreeting:       "Hello! I'm the assistant for our consulting agency. I can help you learn about our services, get a price estimate, or book a free consultation. What can I do for you?",
	IntentThanks:         "You're welcome! If you have any other questions, I'm here to help.",
	IntentServices:       "We offer web development, mobile apps, UI/UX design, digital marketing, SEO, e-commerce, and branding. Which of these is closest to what you need?",
	IntentBooking:        "I'd be happy to help you book a consultation with our team.",
	IntentContact:        "I can pass your message along to our team.",
	IntentTimeline:       "Project timelines depend on scope: a typical website takes 4-8 weeks, larger applications 3-6 months. Tell me a bit about your project and I can be more specific.",
	IntentGettingStarted: "Getting started is simple: we schedule a free consultation, discuss your goals, and then prepare a proposal with scope, timeline, and price. Shall we book that first call?",
	IntentQuestion:       "That's a good question. Could you tell me a bit more about what you're looking for, so I can point you in the right direction?",
}

// synthesizeReply builds the template-based reply used when no LLM is
// configured or the remote call fails.
func synthesizeReply(intent Intent, bag EntityBag, flow Flow) string {
	switch intent {
	case IntentPricing:
		return pricingReply(bag)
	case IntentQuestion:
		// Bias the fallback toward the active flow.
		switch flow {
		case FlowBooking:
			return responseTemplates[IntentBooking]
		case FlowPricing:
			return pricingReply(bag)
		}
	}

	if tpl, ok := responseTemplates[intent]; ok {
		return tpl
	}
	return responseTemplates[IntentQuestion]
}

// pricingReply interpolates the detected project type and any mentioned
// amount into the pricing template.
func pricingReply(bag EntityBag) string {
	project := "a project"
	if name, ok := serviceDisplayNames[bag.Service]; ok {
		project = name
	}

	base := fmt.Sprintf("Pricing for %s depends on scope and features. Most of our projects range from 1,000 to 10,000 EUR.", project)
	if len(bag.PriceMentions) > 0 {
		m := bag.PriceMentions[0]
		base += fmt.Sprintf(" A budget around %d %s gives us a good starting point.", m.Amount, strings.ToUpper(normalizeCurrency(m.Unit)))
	}
	return base + " Would you like to book a free consultation for an exact quote?"
}

func normalizeCurrency(unit string) string {
	switch unit {
	case "$", "usd", "dollar", "dollars":
		return "usd"
	case "din", "dinara", "rsd":
		return "rsd"
	default:
		return "eur"
	}
}
