// Package prompt builds cover-illustration prompts for the storybook themes.
package prompt

import "fmt"

// styleDirective is appended to every cover prompt regardless of theme.
const styleDirective = "Children's picture-book cover illustration in soft watercolor with pastel tones; rounded, gently deformed character design."

// safetyDirective constrains every cover prompt to kid-safe output.
const safetyDirective = "No text or lettering in the image. No violence, no blood, no frightening imagery. No realistic skin or animal textures. Simple, uncluttered background."

// contentDirectives maps known theme tags to a scene description.
// The mapping is total via the fallback in ForTheme; unknown themes are valid.
var contentDirectives = map[string]string{
	"red":     "Little Red Riding Hood in her bright red hood skipping along a sunlit forest path, carrying a small basket, with a friendly-looking wolf peeking from behind a tree.",
	"pigs":    "The Three Little Pigs as cheerful anthropomorphized pigs standing upright and wearing cute clothes, building their straw, stick and brick houses together. The pigs must be clothed storybook characters; never render them as realistic or unclothed animals.",
	"bremen":  "The Bremen Town Musicians: a donkey, a dog, a cat and a rooster stacked on each other's backs, singing happily under a starry night sky on a country road.",
	"peach":   "Momotaro the Peach Boy emerging from a giant peach floating down a river, with an elderly couple watching in joyful surprise from the bank.",
	"red_oni": "A kind red oni with small horns smiling shyly outside his mountain cottage, waving at village children, with his friend the blue oni nearby.",
}

// ForTheme returns the full cover prompt for a theme: style directive, then
// the theme's content directive (or a generic fallback embedding the raw
// theme string), then the safety directive. It never fails.
func ForTheme(theme string) string {
	content, ok := contentDirectives[theme]
	if !ok {
		content = fmt.Sprintf("A children's storybook cover whose theme is '%s'.", theme)
	}
	return styleDirective + " " + content + " " + safetyDirective
}

// Known reports whether the theme has a curated content directive.
func Known(theme string) bool {
	_, ok := contentDirectives[theme]
	return ok
}
