// Package seed loads the festival's opening line-up into an empty store.
package seed

import (
	"context"
	"fmt"

	"github.com/connaissance/fest-api/internal/domain"
)

type EventStore interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
}

func str(s string) *string { return &s }

// Events is the opening line-up. Rules separate lines with a literal
// backslash-n, which is what the site's front end splits on.
var Events = []domain.EventDraft{
	{
		Name:        "RoboWars",
		Description: str("Build and battle robots in an electrifying arena combat. Teams design autonomous or remote-controlled bots to outsmart and overpower opponents."),
		Date:        str("2026-03-15"),
		Rules:       str("1. Team of max 4 members\\n2. Robot weight limit: 8kg\\n3. No flame/chemical weapons\\n4. Match duration: 3 minutes"),
		Eligibility: str("Open to all engineering students"),
		ImageURL:    str("https://images.unsplash.com/photo-1485827404703-89b55fcc595e?w=600"),
	},
	{
		Name:        "CAD Clash",
		Description: str("Showcase your 3D modeling skills in a timed CAD challenge. Participants recreate complex mechanical assemblies using SolidWorks or Fusion 360."),
		Date:        str("2026-03-15"),
		Rules:       str("1. Individual event\\n2. Software: SolidWorks / Fusion 360\\n3. Time limit: 90 minutes\\n4. Models judged on accuracy & creativity"),
		Eligibility: str("Mechanical & related branches"),
		ImageURL:    str("https://images.unsplash.com/photo-1581092160607-ee22621dd758?w=600"),
	},
	{
		Name:        "Bridge Builder",
		Description: str("Design and construct a bridge using popsicle sticks and glue. The bridge that withstands the maximum load wins!"),
		Date:        str("2026-03-16"),
		Rules:       str("1. Team of 2–3 members\\n2. Materials provided on-site\\n3. Bridge span: 30cm minimum\\n4. Judged on load-to-weight ratio"),
		Eligibility: str("Open to all branches"),
		ImageURL:    str("https://images.unsplash.com/photo-1545296664-39db56ad95bd?w=600"),
	},
	{
		Name:        "Tech Quiz",
		Description: str("Test your technical knowledge across engineering domains — mechanics, thermodynamics, coding, and general science."),
		Date:        str("2026-03-16"),
		Rules:       str("1. Team of 2 members\\n2. Three rounds: MCQ, rapid fire, buzzer\\n3. No electronic devices allowed"),
		Eligibility: str("Open to all"),
		ImageURL:    str("https://images.unsplash.com/photo-1606326608606-aa0b62935f2b?w=600"),
	},
	{
		Name:        "Paper Presentation",
		Description: str("Present your research or innovative idea in front of a panel of judges. Topics span across all engineering and technology domains."),
		Date:        str("2026-03-17"),
		Rules:       str("1. Team of 1–3 members\\n2. Presentation: 10 mins + 5 mins Q&A\\n3. PPT format required\\n4. Abstract submission mandatory"),
		Eligibility: str("UG and PG students"),
		ImageURL:    str("https://images.unsplash.com/photo-1531482615713-2afd69097998?w=600"),
	},
	{
		Name:        "Drone Racing",
		Description: str("Pilot your drone through an obstacle course at high speed. Precision and speed determine the winner in this thrilling race."),
		Date:        str("2026-03-17"),
		Rules:       str("1. Individual or team of 2\\n2. Drone weight < 2kg\\n3. FPV or line-of-sight allowed\\n4. Course must be completed in one attempt"),
		Eligibility: str("Open to all engineering students"),
		ImageURL:    str("https://images.unsplash.com/photo-1508614589041-895b88991e3e?w=600"),
	},
}

// Run inserts Events unless the store already holds any event. It reports
// how many were inserted.
func Run(ctx context.Context, store EventStore) (int, error) {
	count, err := store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("store.Count -> %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for _, draft := range Events {
		if _, err = store.Create(ctx, domain.NewEvent(draft)); err != nil {
			return 0, fmt.Errorf("store.Create(%v) -> %w", draft.Name, err)
		}
	}

	return len(Events), nil
}
