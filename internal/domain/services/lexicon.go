package services

import "tcshield-lab/internal/domain/models"

// DefaultLexicon returns the built-in phrase catalogue used by the matcher.
// Entries are grouped by severity and kept in curated order; the matcher and
// the patterns endpoint both rely on that ordering being stable.
func DefaultLexicon() models.Lexicon {
	return models.Lexicon{
		High:   highRiskPhrases(),
		Medium: mediumRiskPhrases(),
		Low:    lowRiskPhrases(),
	}
}

// TCPageIndicators are the title/body phrases used to decide whether a page
// looks like a terms-of-service or privacy-policy document.
func TCPageIndicators() []string {
	return []string{
		"terms",
		"conditions",
		"privacy",
		"policy",
		"agreement",
		"terms of service",
		"terms of use",
		"user agreement",
		"privacy policy",
		"cookie policy",
		"data policy",
	}
}

func highRiskPhrases() []models.PhraseEntry {
	return []models.PhraseEntry{
		{Phrase: "we may share your data", Description: "Your personal data may be shared with third parties"},
		{Phrase: "data may be sold", Description: "Your data could be sold to other companies"},
		{Phrase: "you waive any rights", Description: "You're giving up legal rights"},
		{Phrase: "we are not liable", Description: "Company disclaims responsibility for damages"},
		{Phrase: "personal data may be transferred", Description: "Your data may be moved to other countries"},
		{Phrase: "without prior notice", Description: "Changes can be made without informing you"},
		{Phrase: "tracking technologies", Description: "Your online behavior is being monitored"},

		// Data selling and monetization
		{Phrase: "data may be sold to third parties", Description: "Your personal information could be sold for profit"},
		{Phrase: "we reserve the right to monetize your information", Description: "Company can make money from your personal data"},
		{Phrase: "we share anonymized data for profit", Description: "Your data is used commercially even when anonymized"},
		{Phrase: "personal info is provided to partners", Description: "Your data is shared with business partners"},
		{Phrase: "we may disclose data to advertisers", Description: "Advertisers get direct access to your information"},

		// Privacy violations
		{Phrase: "personal data may be transferred internationally", Description: "Your data may be moved to countries with weaker privacy laws"},
		{Phrase: "we track your activity across sites", Description: "Your browsing behavior is monitored across multiple websites"},
		{Phrase: "behavioral profiling is performed", Description: "Company creates detailed profiles of your behavior"},
		{Phrase: "we may access your contacts", Description: "Company can access your personal contact list"},
		{Phrase: "we may record calls or messages", Description: "Your communications may be recorded and stored"},

		// Legal waivers
		{Phrase: "use at your own risk", Description: "You accept all risks with no company responsibility"},
		{Phrase: "no warranties are provided", Description: "Company provides no guarantees about their service"},
		{Phrase: "we disclaim all responsibility", Description: "Company takes no responsibility for any issues"},
		{Phrase: "you waive the right to sue", Description: "You give up your right to take legal action"},
		{Phrase: "indirect or consequential damages are excluded", Description: "Company won't pay for damages their service causes"},

		// Arbitration and dispute resolution
		{Phrase: "disputes will be resolved through arbitration", Description: "You cannot take disputes to court"},
		{Phrase: "you waive the right to a jury trial", Description: "You give up your constitutional right to a jury trial"},
		{Phrase: "class action waivers apply", Description: "You cannot join with others in a class action lawsuit"},
		{Phrase: "binding arbitration is mandatory", Description: "You must use private arbitration instead of courts"},

		// Content and IP rights
		{Phrase: "we own any content you submit", Description: "Company claims ownership of everything you post"},
		{Phrase: "you grant us a perpetual license", Description: "Company gets permanent rights to use your content"},
		{Phrase: "rights are worldwide and royalty-free", Description: "Company can use your content globally without paying you"},

		// Unilateral changes
		{Phrase: "we reserve the right to modify these terms at any time", Description: "Company can change terms whenever they want"},
		{Phrase: "changes are effective immediately upon posting", Description: "New terms apply instantly without your explicit agreement"},
		{Phrase: "we may change features without notice", Description: "Service features can be removed without warning"},
		{Phrase: "we can update pricing without warning", Description: "Prices can increase without advance notice"},
	}
}

func mediumRiskPhrases() []models.PhraseEntry {
	return []models.PhraseEntry{
		{Phrase: "third-party service providers", Description: "Your data is shared with external companies"},
		{Phrase: "we may disclose", Description: "Information may be revealed under certain conditions"},
		{Phrase: "automatically renew", Description: "Subscription will continue charging automatically"},
		{Phrase: "revise these terms at any time", Description: "Terms can change without your explicit consent"},
		{Phrase: "subject to change", Description: "Policies may be modified"},
		{Phrase: "cancel anytime", Description: "May have hidden cancellation restrictions"},

		// Privacy and data collection
		{Phrase: "we may collect personal information", Description: "Company gathers your personal details"},
		{Phrase: "your data may be shared with affiliates", Description: "Information is shared within the company group"},
		{Phrase: "data retention policies may change", Description: "How long they keep your data can change"},
		{Phrase: "cookies and tracking technologies are used", Description: "Website tracks your browsing with cookies"},
		{Phrase: "location data is collected", Description: "Your physical location is tracked and stored"},
		{Phrase: "your browsing history may be logged", Description: "Record of websites you visit is kept"},
		{Phrase: "information from your device is collected", Description: "Data about your device and software is gathered"},
		{Phrase: "usage statistics are aggregated", Description: "Your usage patterns are compiled with others"},
		{Phrase: "we may link data from multiple sources", Description: "Information about you is combined from different places"},

		// Billing and subscriptions
		{Phrase: "subscription automatically renews", Description: "You'll be charged repeatedly unless you cancel"},
		{Phrase: "you will be charged unless cancelled", Description: "Billing continues until you actively stop it"},
		{Phrase: "renewal occurs without notice", Description: "Subscription renews without warning you first"},
		{Phrase: "billing continues until you opt out", Description: "Charges keep happening until you take action"},
		{Phrase: "price may increase without consent", Description: "Costs can go up without your agreement"},

		// Marketing and advertising
		{Phrase: "your information could be used for marketing", Description: "Your data is used to send you advertisements"},
		{Phrase: "advertisers may receive user data", Description: "Marketing companies get access to your information"},
		{Phrase: "your preferences are sold or exchanged", Description: "Information about your likes/dislikes is shared for profit"},
		{Phrase: "we use your profile data for targeted ads", Description: "Personal information is used to show you specific ads"},

		// Cancellation and refunds
		{Phrase: "refunds are subject to approval", Description: "Getting your money back requires company permission"},
		{Phrase: "we may refuse refund requests", Description: "Company can deny refunds at their discretion"},
		{Phrase: "cancellations must be made within a narrow window", Description: "Very limited time to cancel your subscription"},
		{Phrase: "service may be terminated without notice", Description: "Company can end your service without warning"},

		// Legal and jurisdictional
		{Phrase: "venue is chosen by the company", Description: "Legal disputes happen where the company wants"},
		{Phrase: "you agree to private dispute resolution only", Description: "Cannot use public courts for disputes"},
		{Phrase: "the court of our choice has jurisdiction", Description: "Company decides which court handles legal issues"},
		{Phrase: "we may assign our rights freely", Description: "Company can transfer their rights to others"},
		{Phrase: "continued use implies acceptance of changes", Description: "Using the service means you agree to new terms"},
	}
}

func lowRiskPhrases() []models.PhraseEntry {
	return []models.PhraseEntry{
		{Phrase: "non-refundable", Description: "Payments cannot be returned"},
		{Phrase: "opt-out at your own risk", Description: "Opting out may have consequences"},
		{Phrase: "cookies and similar technologies", Description: "Website uses tracking cookies"},
		{Phrase: "analytics and advertising", Description: "Data used for marketing purposes"},

		// Fees and charges
		{Phrase: "fees are non-refundable", Description: "Money paid cannot be returned"},
		{Phrase: "hidden charges may apply", Description: "Additional fees may be charged"},
		{Phrase: "charges may appear on your statement under a different name", Description: "Billing may show up with unexpected company names"},
		{Phrase: "you forfeit fees upon cancellation", Description: "No refund when you cancel your account"},
		{Phrase: "termination does not entitle you to compensation", Description: "No payment if service is ended"},

		// Service limitations
		{Phrase: "no guarantee of uninterrupted service", Description: "Service may have downtime or interruptions"},
		{Phrase: "we are not responsible for data breaches", Description: "Company doesn't take responsibility for security incidents"},
		{Phrase: "security is provided as is", Description: "No guarantees about how secure the service is"},
		{Phrase: "we may suspend accounts for any reason", Description: "Your account can be suspended without specific cause"},
		{Phrase: "you are responsible for your credentials", Description: "You must protect your own login information"},

		// Content and user-generated content
		{Phrase: "we may repurpose your submissions", Description: "Content you submit may be used in other ways"},
		{Phrase: "user-generated content may be used for promotion", Description: "Your posts might be used in marketing materials"},
		{Phrase: "we can edit or remove your content without notice", Description: "Company can modify or delete what you post"},
		{Phrase: "you cannot transfer your rights without permission", Description: "Cannot give your account rights to someone else"},

		// Legal technicalities
		{Phrase: "you agree to indemnify us", Description: "You'll pay for any legal costs the company faces"},
		{Phrase: "you accept all risks", Description: "You take responsibility for any problems that occur"},
		{Phrase: "severability means the rest remains valid", Description: "If one part is invalid, the rest of the agreement stays"},
		{Phrase: "failure to enforce rights does not waive them", Description: "Company keeps their rights even if they don't use them"},
		{Phrase: "terms may be revised without explicit consent", Description: "Agreement can change without asking you directly"},
		{Phrase: "we are not responsible for third-party actions", Description: "Company not liable for what their partners do"},
	}
}
