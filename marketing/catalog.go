// Package marketing holds the MoneyBox launch collateral: brand palette,
// social templates, email sequences, ad copy, the launch checklist and the
// support FAQ. It is static display data rendered to markdown.
package marketing

// BrandColor is one entry of the brand palette.
type BrandColor struct {
	Name string
	Hex  string
}

// SocialTemplate is a ready-to-post social media template.
type SocialTemplate struct {
	Platform string
	Title    string
	Content  string
}

// EmailSequence is one step of the onboarding email drip.
type EmailSequence struct {
	Day     int
	Subject string
	Body    string
	CTA     string
}

// AdCopy is a paid-advertising creative.
type AdCopy struct {
	Channel     string
	Headline    string
	Description string
	URL         string
}

// ChecklistItem is one task of the launch checklist.
type ChecklistItem struct {
	Task      string
	Completed bool
}

// SupportFAQ is one question of the support hub.
type SupportFAQ struct {
	Question string
	Answer   string
}

// BrandColors is the MoneyBox palette.
var BrandColors = []BrandColor{
	{Name: "Indigo-600", Hex: "#4F46E5"},
	{Name: "Purple-600", Hex: "#9333EA"},
	{Name: "Blue-600", Hex: "#2563EB"},
	{Name: "Green-600", Hex: "#059669"},
	{Name: "Red-600", Hex: "#DC2626"},
	{Name: "Yellow-500", Hex: "#EAB308"},
	{Name: "Gray-900", Hex: "#111827"},
}

// EmailSequences is the onboarding drip.
var EmailSequences = []EmailSequence{
	{
		Day:     1,
		Subject: "Welcome to MoneyBox! 🎉 Personal & Firm Control Starts Now",
		Body: "Hi [Name],\n\nWelcome to the MoneyBox family! Whether you're managing your household budget or your firm's operating expenses, you've just taken a massive step toward clarity.\n\nYour first week mission:\n✓ Set up your first 'Box' (Personal or Business)\n✓ Categorize your last 10 transactions\n✓ Invite a collaborator (for firms)\n\nPro tip: Tag expenses as 'Reimbursable' or 'Business' to keep your worlds perfectly separated.",
		CTA:  "Start Your First Box",
	},
	{
		Day:     2,
		Subject: "📊 BoxScore: For You and Your Business",
		Body: "Hi [Name],\n\nBoxScore isn't just for savings; it's a health check for your firm too.\n\nFor Individuals:\n• Savings rate & debt control.\n\nFor Firms:\n• Burn rate, runway, and expense efficiency.\n\nKeep your score above 80 to ensure long-term stability.",
		CTA:  "Check Your BoxScore",
	},
}

// SocialTemplates is the social media kit, keyed by platform.
var SocialTemplates = []SocialTemplate{
	{
		Platform: "Instagram",
		Title:    "Feature Highlight: One App, Two Worlds",
		Content:  "📊 Personal Budget vs. Business Cash Flow?\n\nStop switching between five apps. MoneyBox handles your individual savings and your firm's expenses in one clean interface.\n\n✓ Individual: Goal tracking & daily budgeting.\n✓ Firm: Expense reports & cash flow forecasting.\n\nGet the full picture. Download MoneyBox! 📦\n\n#MoneyBox #FinTech #BusinessOwner #PersonalFinance #SmallBiz",
	},
	{
		Platform: "Instagram",
		Title:    "Quick Tip: The Firm's Safety Net",
		Content:  "💡 FIRM FINANCE TIP\n\nAlways maintain a 3-month operating reserve. Use the 'Emergency Box' feature to automatically sweep a percentage of every invoice into your safety net.\n\nTrack it all in MoneyBox 📦\nDownload free → Link in bio",
	},
	{
		Platform: "Twitter",
		Title:    "Launch Announcement",
		Content:  "Managing a firm shouldn't feel like a second job. 📊\n\nMoneyBox is now live! Powerful expense tracking and cash flow forecasting for individuals AND small firms. \n\nOne login. Complete financial control.\n\n[Link] #FinTech #Startup #SaaS",
	},
	{
		Platform: "LinkedIn",
		Title:    "The Future of Professional Finance",
		Content:  "Financial literacy is just as important for a firm as it is for an individual. 📊\n\nI'm proud to introduce MoneyBox - a dual-purpose platform designed to bridge the gap between personal budgeting and corporate expense management.\n\nKey features for firms:\n• Multi-user expense tracking\n• 6-month cash flow forecasting\n• Automated tax category sorting\n\nRevolutionizing how we view money management for the modern professional. [link]\n\n#MoneyBox #CorporateFinance #Innovation #SmallBusiness",
	},
}

// AdCopies is the paid-advertising kit.
var AdCopies = []AdCopy{
	{
		Channel:     "Google Search",
		Headline:    "One Budget App for You & Your Firm",
		Description: "Track personal savings and firm expenses side by side. Exact figures, bill reminders, zero spreadsheets.",
		URL:         "moneybox.app/start",
	},
	{
		Channel:     "Meta",
		Headline:    "Your money, boxed and sorted 📦",
		Description: "MoneyBox keeps your household and your business in separate boxes with one shared overview. Free to start.",
		URL:         "moneybox.app/meta",
	},
	{
		Channel:     "LinkedIn Ads",
		Headline:    "Built for founders who also have rent",
		Description: "Burn rate next to your grocery budget. MoneyBox separates firm and personal finances without separating you from the picture.",
		URL:         "moneybox.app/founders",
	},
}

// LaunchChecklist is the go-live task list.
var LaunchChecklist = []ChecklistItem{
	{Task: "Finalize brand palette and logo set", Completed: true},
	{Task: "Publish onboarding email sequence", Completed: true},
	{Task: "Schedule launch-week social posts", Completed: false},
	{Task: "Set up paid ad campaigns (Search, Meta, LinkedIn)", Completed: false},
	{Task: "Dry-run support hub with beta users", Completed: false},
}

// SupportFAQs is the support hub content.
var SupportFAQs = []SupportFAQ{
	{
		Question: "Is my financial data uploaded anywhere?",
		Answer:   "No. Boxes, bills and notifications live in local storage on your device. Nothing leaves it.",
	},
	{
		Question: "What does the PIN lock protect?",
		Answer:   "The PIN gates the app screens. It is a convenience lock, not encryption: treat your device security as the real boundary.",
	},
	{
		Question: "Does privacy mode hide my data from other users?",
		Answer:   "Privacy mode only masks the amounts on screen, for shoulder-surfing situations. All data stays accessible once unmasked.",
	},
	{
		Question: "What happens when I pay a bill?",
		Answer:   "Marking a bill paid records a matching expense transaction automatically, so your balance always reflects settled bills.",
	},
}
