package looks

import (
	"strings"

	"lookbook-backend/internal/looks/engine"
)

// GenerateRequest is the POST /looks/generate body.
type GenerateRequest struct {
	Profile    ProfileInput `json:"profile"`
	ExcludeIDs []string     `json:"excludeIds"`
}

// RegenerateRequest is the POST /looks/regenerate body.
type RegenerateRequest struct {
	Profile            ProfileInput `json:"profile"`
	PreviouslyShownIDs []string     `json:"previouslyShownIds"`
}

// ProfileInput mirrors the quiz payload. Budget stays a raw string; the
// engine owns parsing and defaulting.
type ProfileInput struct {
	Purpose               string      `json:"purpose"`
	Gender                string      `json:"gender"`
	Style                 string      `json:"style"`
	Occasion              string      `json:"occasion"`
	Budget                string      `json:"budget"`
	ColorMood             string      `json:"colorMood"`
	Sizes                 *SizesInput `json:"sizes"`
	RecipientRelationship string      `json:"recipientRelationship"`
}

// SizesInput carries optional size answers.
type SizesInput struct {
	Top    string `json:"top"`
	Bottom string `json:"bottom"`
	Shoe   string `json:"shoe"`
}

// Result is the response for both looks endpoints. ShownIDs is the
// exclusion set after this call, returned explicitly so callers can thread
// it into the next regeneration.
type Result struct {
	GenerationID string        `json:"generationId"`
	Looks        []engine.Look `json:"looks"`
	ShownIDs     []string      `json:"shownIds"`
}

// toProfile converts the wire payload into the engine's profile. Gift
// details only exist when the purpose is a gift.
func (in ProfileInput) toProfile() engine.Profile {
	purpose := strings.ToLower(strings.TrimSpace(in.Purpose))
	if purpose != engine.PurposeGift {
		purpose = engine.PurposePersonal
	}

	p := engine.Profile{
		Purpose:   purpose,
		Gender:    in.Gender,
		Style:     in.Style,
		Occasion:  in.Occasion,
		Budget:    in.Budget,
		ColorMood: in.ColorMood,
	}
	if in.Sizes != nil {
		p.Sizes = &engine.Sizes{Top: in.Sizes.Top, Bottom: in.Sizes.Bottom, Shoe: in.Sizes.Shoe}
	}
	if purpose == engine.PurposeGift {
		p.Gift = &engine.GiftDetails{Relationship: strings.TrimSpace(in.RecipientRelationship)}
	}
	return p
}
