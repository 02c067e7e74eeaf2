package entity

// SettingsDocID is the well-known identifier of the singleton settings
// document ("settings/main").
const SettingsDocID = "main"

type HeroSlide struct {
	Image string `json:"image" firestore:"image"`
	Label string `json:"label" firestore:"label"`
}

type Testimonial struct {
	Name  string `json:"name" firestore:"name"`
	Role  string `json:"role" firestore:"role"`
	Text  string `json:"text" firestore:"text"`
	Stars int    `json:"stars" firestore:"stars"`
}

// Theme is the flat color palette applied across the storefront.
type Theme struct {
	Accent1       string `json:"accent1" firestore:"accent1"`
	Accent2       string `json:"accent2" firestore:"accent2"`
	Accent3       string `json:"accent3" firestore:"accent3"`
	Accent4       string `json:"accent4" firestore:"accent4"`
	BgPrimary     string `json:"bgPrimary" firestore:"bgPrimary"`
	BgSecondary   string `json:"bgSecondary" firestore:"bgSecondary"`
	BgTertiary    string `json:"bgTertiary" firestore:"bgTertiary"`
	BgCard        string `json:"bgCard" firestore:"bgCard"`
	BgInput       string `json:"bgInput" firestore:"bgInput"`
	TextPrimary   string `json:"textPrimary" firestore:"textPrimary"`
	TextSecondary string `json:"textSecondary" firestore:"textSecondary"`
	TextMuted     string `json:"textMuted" firestore:"textMuted"`
	BorderHex     string `json:"borderHex" firestore:"borderHex"`
	NavBg         string `json:"navBg" firestore:"navBg"`
	FooterBg      string `json:"footerBg" firestore:"footerBg"`
	BtnText       string `json:"btnText" firestore:"btnText"`
}

// Settings is a singleton; it is merged on save and never deleted.
type Settings struct {
	CompanyName      string        `json:"companyName" firestore:"companyName"`
	Tagline          string        `json:"tagline" firestore:"tagline"`
	Email            string        `json:"email" firestore:"email"`
	Phone            string        `json:"phone" firestore:"phone"`
	Whatsapp         string        `json:"whatsapp" firestore:"whatsapp"`
	Address          string        `json:"address" firestore:"address"`
	Logo             string        `json:"logo,omitempty" firestore:"logo"`
	ShowPricesGlobal bool          `json:"showPricesGlobal" firestore:"showPricesGlobal"`
	ShowGhsPrice     bool          `json:"showGhsPrice" firestore:"showGhsPrice"`
	GhsRate          float64       `json:"ghsRate" firestore:"ghsRate"`
	AnnBarText       string        `json:"annBarText" firestore:"annBarText"`
	AnnBarLink       string        `json:"annBarLink" firestore:"annBarLink"`
	AnnBarOn         bool          `json:"annBarOn" firestore:"annBarOn"`
	HeroSlides       []HeroSlide   `json:"heroSlides" firestore:"heroSlides"`
	Theme            Theme         `json:"theme" firestore:"theme"`
	Testimonials     []Testimonial `json:"testimonials" firestore:"testimonials"`
}
