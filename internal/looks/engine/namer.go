package engine

// Look naming is fully deterministic: the template picked depends only on
// the look index, the purpose and the occasion. No scoring, no randomness.

type nameTemplate struct {
	name        string
	description string
}

var personalTemplates = []nameTemplate{
	{"The Signature Edit", "A balanced outfit built around your style answers."},
	{"Effortless Ease", "Low-key pieces that work together without trying hard."},
	{"The Sharp Take", "A slightly dressed-up angle on your usual look."},
	{"Weekend Rotation", "Comfortable, repeatable and easy to mix further."},
	{"The Wildcard", "A bolder combination worth trying at least once."},
}

var giftTemplates = []nameTemplate{
	{"The Thoughtful Bundle", "A safe, well-rounded gift that reads as considered."},
	{"The Crowd Pleaser", "Familiar pieces almost anyone would be happy to unwrap."},
	{"The Upgrade Gift", "A nicer version of things they already reach for."},
	{"The Complete Set", "Everything coordinates, nothing needs exchanging."},
	{"The Statement Gift", "For when you want the gift to be remembered."},
}

// occasionOverrides replaces the first look's template when the quiz named a
// matching occasion, so the headline look speaks to the event directly.
var occasionOverrides = map[string]nameTemplate{
	"work":    {"Boardroom Ready", "Polished pieces that hold up through a full workday."},
	"party":   {"After Dark", "Built to stand out once the lights go down."},
	"wedding": {"Celebration Fit", "Festive and photogenic without upstaging anyone."},
	"date":    {"First Impression", "Sharp but relaxed, like you didn't overthink it."},
	"travel":  {"Carry-On Capsule", "Layers that pack flat and mix all trip long."},
	"daily":   {"The Everyday Uniform", "A default you can reach for without deciding."},
}

var personalTips = []string{
	"Tuck the top in halfway for a more deliberate silhouette.",
	"Roll the sleeves and keep accessories to one statement piece.",
	"Match your belt to the footwear to pull the look together.",
	"Layer a plain tee underneath so you can dress it down later.",
	"If in doubt, steam the pieces. Wrinkles undo any outfit.",
}

var giftTips = []string{
	"Gift the pieces together in one box so the pairing is obvious.",
	"Leave the tags on. Sizes are easier to swap than styles.",
	"Add a short note about why you picked the combination.",
	"Neutral colors are the safest bet when gifting apparel.",
	"Present the footwear separately for a two-part reveal.",
}

var occasionTips = map[string]string{
	"work":    "Keep one piece structured, a blazer or crisp shirt anchors the rest.",
	"party":   "One shiny or bold element is enough; keep the rest quiet.",
	"wedding": "Comfort wins over drama. You will be standing for hours.",
	"date":    "Wear it once before the day so nothing surprises you.",
	"travel":  "Wear the heaviest pieces in transit to lighten the bag.",
	"daily":   "Buy doubles of whatever you reach for most.",
}

// lookName returns the deterministic name/description pair for a look slot.
func lookName(index int, purpose, occasion string) (string, string) {
	if index == 0 {
		if t, ok := occasionOverrides[lower(occasion)]; ok {
			return t.name, t.description
		}
	}
	templates := personalTemplates
	if purpose == PurposeGift {
		templates = giftTemplates
	}
	t := templates[index%len(templates)]
	return t.name, t.description
}

// styleTip picks the one-line tip for a look slot. The first slot defers to
// an occasion-specific tip when one exists.
func styleTip(index int, purpose, occasion string) string {
	if index == 0 {
		if tip, ok := occasionTips[lower(occasion)]; ok {
			return tip
		}
	}
	tips := personalTips
	if purpose == PurposeGift {
		tips = giftTips
	}
	return tips[index%len(tips)]
}
