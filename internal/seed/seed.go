package seed

import (
	"context"
	"errors"
	"log"

	"assessment-service/internal/models"
	"assessment-service/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

// Run loads the reference data: the checklist catalog, the test questions, and
// the sample user. Safe to call on every start; rows that already exist (same
// title or email) are left alone.
func Run(ctx context.Context, items *repository.ChecklistItemRepository, questions *repository.QuestionRepository, users *repository.UserRepository) error {
	if err := seedChecklistItems(ctx, items); err != nil {
		return err
	}
	if err := seedTestQuestions(ctx, questions); err != nil {
		return err
	}
	return seedSampleUser(ctx, users)
}

func seedChecklistItems(ctx context.Context, repo *repository.ChecklistItemRepository) error {
	catalog := []models.ChecklistItem{
		// a-b band: reporting basics
		{
			Level:       models.LevelBandAtoB,
			Title:       "Greets people in a clear, audible voice",
			Description: "Greeting as basic business etiquette",
			Reference:   "Attitude over ability",
			Order:       1,
		},
		{
			Level:       models.LevelBandAtoB,
			Title:       "Considers who the recipient is before reporting",
			Description: "Communication shaped around the report's audience",
			Reference:   "10-minute skills: Reporting, p.416",
			Order:       2,
		},
		{
			Level:       models.LevelBandAtoB,
			Title:       "Delivers situation, judgment, and reasoning as a set",
			Description: "Understands the basic structure of a report",
			Reference:   "10-minute skills: Reporting, p.418",
			Order:       3,
		},
		{
			Level:       models.LevelBandAtoB,
			Title:       "Reports uncomfortable facts honestly",
			Description: "Shares negative information without hiding it",
			Reference:   "10-minute skills: Reporting, p.424",
			Order:       4,
		},
		// b-c band: consultation with judgment
		{
			Level:       models.LevelBandBtoC,
			Title:       "Brings proposals or options when asking for a decision",
			Description: "Consultation that seeks a judgment, not just a status update",
			Reference:   "10-minute skills: Reporting, p.420",
			Order:       1,
		},
		{
			Level:       models.LevelBandBtoC,
			Title:       "Organizes their own thinking before consulting",
			Description: "Comes with an opinion instead of delegating the problem",
			Reference:   "10-minute skills: Consulting, p.580",
			Order:       2,
		},
		{
			Level:       models.LevelBandBtoC,
			Title:       "Distinguishes reporting from consulting",
			Description: "Understands the purpose of each kind of communication",
			Reference:   "Three working principles, p.240",
			Order:       3,
		},
		{
			Level:       models.LevelBandBtoC,
			Title:       "Consults with their own view rather than handing the problem over",
			Description: "Consultation with ownership",
			Reference:   "10-minute skills: Consulting, p.601",
			Order:       4,
		},
		// c-d band: context-aware judgment
		{
			Level:       models.LevelBandCtoD,
			Title:       "Accounts for the other party's position, background, and time",
			Description: "Consideration for stakeholders",
			Reference:   "10-minute skills: Consulting, p.584",
			Order:       1,
		},
		{
			Level:       models.LevelBandCtoD,
			Title:       "Chooses whom, when, and through which channel to consult",
			Description: "Picks the best consultation approach",
			Reference:   "10-minute skills: Consulting, p.605",
			Order:       2,
		},
		{
			Level:       models.LevelBandCtoD,
			Title:       "Follows the decide, execute, check, report cycle",
			Description: "Understands the PDCA cycle",
			Reference:   "Three working principles, p.252",
			Order:       3,
		},
		// A-B band: technical basics
		{
			Level:       models.LevelBandTechAtoB,
			Title:       "Sets up and operates a basic development environment",
			Description: "Uses the tools development requires",
			Reference:   "Technical standard",
			Order:       1,
		},
		{
			Level:       models.LevelBandTechAtoB,
			Title:       "Implements an assigned feature independently",
			Description: "Completes tasks without hand-holding",
			Reference:   "Technical standard",
			Order:       2,
		},
		{
			Level:       models.LevelBandTechAtoB,
			Title:       "Implements according to the coding conventions",
			Description: "Adheres to the quality standard",
			Reference:   "Technical standard",
			Order:       3,
		},
	}

	for i := range catalog {
		item := catalog[i]
		item.IsActive = true
		_, err := repo.FindByTitle(ctx, item.Title)
		if err == nil {
			continue
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}
		if err := repo.Create(ctx, &item); err != nil {
			return err
		}
	}
	log.Printf("Seeded checklist items (%d in catalog)", len(catalog))
	return nil
}

func seedTestQuestions(ctx context.Context, repo *repository.QuestionRepository) error {
	questions := []models.TestQuestion{
		{
			Level: models.LevelBandAtoB,
			Type:  models.TypeShortAnswer,
			Title: "E-commerce bug first report",
			Content: "You own the product search feature of an e-commerce site.\n" +
				"During testing you find that searching by product name renders a blank page.\n" +
				"What do you say first when reporting this to your manager? (50 characters or less)",
			MaxScore:         30,
			TimeLimitMinutes: 10,
		},
		{
			Level: models.LevelBandBtoC,
			Type:  models.TypeChoice,
			Title: "Payment bug escalation",
			Content: "You are developing the payment feature of a web app.\n" +
				"Testing shows credit card payments fail 5% of the time.\n" +
				"Release is tomorrow and customers were already told the app goes live then.\n" +
				"Your manager is in an important meeting that ends in an hour.\n\n" +
				"Which action is the most appropriate?",
			Options: []string{
				"A) Interrupt the meeting and report immediately",
				"B) Investigate the cause, prepare three workaround options, then consult",
				"C) Ask other developers for their opinion before reporting",
				"D) Decide yourself whether to postpone the release, then report",
			},
			CorrectAnswer:    "B",
			MaxScore:         25,
			TimeLimitMinutes: 15,
		},
		{
			Level: models.LevelBandCtoD,
			Type:  models.TypeCaseStudy,
			Title: "Release slip impact analysis",
			Content: "You are the sub-lead on a web app built for Miraize Inc.\n" +
				"At 3pm today a critical bug was found in the feature scheduled to ship.\n" +
				"The fix needs at least two days. Miraize plans to demo the feature at\n" +
				"tomorrow's shareholder meeting, marketing has already emailed customers,\n" +
				"and the engineering team is stretched across other projects.\n\n" +
				"Name four stakeholders to consider here and the concrete impact on each.",
			MaxScore:         40,
			TimeLimitMinutes: 20,
		},
	}

	for i := range questions {
		question := questions[i]
		question.IsActive = true
		_, err := repo.FindByTitle(ctx, question.Title)
		if err == nil {
			continue
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}
		if err := repo.Create(ctx, &question); err != nil {
			return err
		}
	}
	log.Printf("Seeded test questions (%d in catalog)", len(questions))
	return nil
}

func seedSampleUser(ctx context.Context, repo *repository.UserRepository) error {
	const email = "sample@example.com"
	_, err := repo.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	return repo.Create(ctx, &models.User{
		Name:      "Sample Taro",
		Email:     email,
		Position:  "Junior Engineer",
		TechLevel: models.TechLevelA,
		BizLevel:  models.BizLevelA,
	})
}
