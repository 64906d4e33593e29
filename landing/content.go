package landing

import (
	"fmt"
	"time"
)

// Brand is the product name shown in the navbar and footer
const Brand = "DataViz"

// SectionID names a navigable block of the page
type SectionID string

const (
	SectionHero     SectionID = "hero"
	SectionFeatures SectionID = "features"
	SectionPricing  SectionID = "pricing"
	SectionContact  SectionID = "contact"
)

// Sections lists the page sections top to bottom
var Sections = []SectionID{SectionHero, SectionFeatures, SectionPricing, SectionContact}

// NavLink is an entry of the navigation bar
type NavLink struct {
	Target SectionID
	Label  string
}

// NavLinks are shown in both the desktop bar and the mobile panel
var NavLinks = []NavLink{
	{Target: SectionFeatures, Label: "Features"},
	{Target: SectionPricing, Label: "Pricing"},
	{Target: SectionContact, Label: "Contact"},
}

// IconCategory is the pictogram family of a feature card
type IconCategory string

const (
	IconChart  IconCategory = "chart"
	IconShield IconCategory = "shield"
	IconZap    IconCategory = "zap"
	IconUsers  IconCategory = "users"
	IconPie    IconCategory = "pie"
	IconMail   IconCategory = "mail"
)

// Feature is one card of the feature grid
type Feature struct {
	Icon        IconCategory
	Title       string
	Description string
}

// Features is the fixed feature catalog
var Features = []Feature{
	{Icon: IconChart, Title: "Real-time Analytics", Description: "Monitor your store performance in real-time with interactive dashboards"},
	{Icon: IconShield, Title: "Secure Data", Description: "Enterprise-grade security to protect your sensitive business information"},
	{Icon: IconZap, Title: "Fast Insights", Description: "Get instant insights with our lightning-fast data processing"},
	{Icon: IconUsers, Title: "Team Collaboration", Description: "Share insights and collaborate with your team members seamlessly"},
	{Icon: IconPie, Title: "Custom Reports", Description: "Create and schedule custom reports tailored to your needs"},
	{Icon: IconMail, Title: "Alert Systems", Description: "Set up custom alerts for important metrics and never miss a trend"},
}

// PricingTier is one plan of the pricing grid
type PricingTier struct {
	Title       string
	Price       string
	Features    []string
	Highlighted bool
}

// PricingTiers is the fixed pricing catalog
var PricingTiers = []PricingTier{
	{
		Title:    "Starter",
		Price:    "$49",
		Features: []string{"5 Dashboards", "Basic Analytics", "Email Support", "1 Team Member"},
	},
	{
		Title:       "Professional",
		Price:       "$99",
		Features:    []string{"Unlimited Dashboards", "Advanced Analytics", "Priority Support", "5 Team Members"},
		Highlighted: true,
	},
	{
		Title:    "Enterprise",
		Price:    "Custom",
		Features: []string{"Custom Solutions", "Dedicated Support", "API Access", "Unlimited Team Members"},
	},
}

// Marketing copy
const (
	HeroTitle       = "Transform Your Store Data Into Insights"
	HeroSubtitle    = "Powerful dashboards and analytics tools designed for modern merchants. Get real-time insights into your store performance."
	FeaturesTitle   = "Powerful Features"
	PricingTitle    = "Simple Pricing"
	ContactTitle    = "Get In Touch"
	SuccessMessage  = "Thanks for your message! We will get back to you soon."
	GetStartedLabel = "Get Started"
	LearnMoreLabel  = "Learn More"
	SendLabel       = "Send Message"
)

// CopyrightLine renders the footer notice for the year of now
func CopyrightLine(now time.Time) string {
	return fmt.Sprintf("© %d %s. All rights reserved.", now.Year(), Brand)
}
