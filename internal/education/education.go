// Package education holds the short reference cards behind the "Info" buttons of the tasks.
package education

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
)

type Topic struct {
	Slug  string
	Title string
	Body  string
}

var topics = map[string]Topic{
	"breathing": {
		Slug:  "breathing",
		Title: "Breathing Exercise: Box Breathing",
		Body: `Inhale for **4s**, hold for **4s**, exhale for **4s**, hold for **4s**.

Repeat for 2-5 minutes. This calms the nervous system.`,
	},
	"mindfulness": {
		Slug:  "mindfulness",
		Title: "One Minute of Mindfulness",
		Body: `Sit comfortably and set a timer for 60 seconds.

1. Rest your attention on the breath at the nostrils.
2. When a thought shows up, note it ("planning", "worrying") and return to the breath.
3. Rate your mood and stress before and after.

The point is not an empty mind. Every return to the breath is a repetition.`,
	},
	"sleep": {
		Slug:  "sleep",
		Title: "Sleep Hygiene",
		Body: `- Keep the same bedtime and wake time, weekends included.
- Dim screens and lights 30 minutes before bed.
- Keep the bedroom cool, dark and quiet.
- No caffeine after early afternoon.

From week 2 your times are compared against your targets. Within 30 minutes counts as on target.`,
	},
	"mealtimes": {
		Slug:  "mealtimes",
		Title: "Regular Mealtimes",
		Body: `Eating at fixed times steadies hunger and makes snacking a decision instead of a reflex.

Log when you ate, how much water you drank and what you ate. Week 2 adds three habits:
stop junk food, snack on fruit and stick to your mealtimes.`,
	},
	"calories": {
		Slug:  "calories",
		Title: "Counting Calories",
		Body: `From week 3 you track a daily calorie total.

Your goal is your base need minus your deficit target (500 kcal unless you chose another).
A deficit of 500 kcal a day is roughly half a kilo a week.`,
	},
	"triggers": {
		Slug:  "triggers",
		Title: "Finding Your Trigger",
		Body: `A habit runs on a loop: **trigger → behavior → reward**.

For a week, note every time the behavior happens and what was going on just before.
The pattern that repeats is your trigger.`,
	},
	"substitution": {
		Slug:  "substitution",
		Title: "Substituting the Behavior",
		Body: `Once you know the trigger, keep it and the reward and swap the behavior in the middle.

Pick something you can do in the same place and time: a glass of water, ten squats,
a short walk, a text to a friend.`,
	},
	"exercise": {
		Slug:  "exercise",
		Title: "Training Phases",
		Body: `| Weeks | Phase | Focus |
|---|---|---|
| 1-3 | 1 | Build the habit |
| 4-6 | 2 | Add intervals and volume |
| 7-10 | 3 | Push intensity |

From age 50 the cardio is swapped for low-impact options.`,
	},
}

// Lookup returns the topic with the given slug.
func Lookup(slug string) (Topic, error) {
	t, ok := topics[strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return Topic{}, fmt.Errorf("unknown topic %q (available: %s)", slug, strings.Join(Slugs(), ", "))
	}
	return t, nil
}

// Slugs returns the topic slugs in alphabetical order.
func Slugs() []string {
	slugs := make([]string, 0, len(topics))
	for slug := range topics {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// Markdown returns the card as a markdown document.
func (t Topic) Markdown() string {
	return fmt.Sprintf("# %s\n\n%s\n", t.Title, t.Body)
}

// Render formats md for the terminal. It falls back to the raw markdown if rendering fails.
func Render(md string, width int, dark bool) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "light"
	if dark {
		style = "dark"
	}
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
