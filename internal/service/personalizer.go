package service

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/soberpath/go-notification-service/internal/domain"
	"github.com/soberpath/go-notification-service/internal/shared/logger"
)

// defaultGoals stands in for the goals placeholder when the profile's goals
// field is empty
const defaultGoals = "building a healthier life"

type messageTemplate struct {
	Title string
	Body  string
}

// Built-in templates per trigger type. Placeholders: {{addiction}},
// {{days}}, {{motivation}}, {{goals}}. With no stored profile the template
// text is delivered verbatim, placeholders included only where the default
// copy reads sensibly without them — so the defaults avoid placeholders in
// load-bearing positions.
var defaultTemplates = map[domain.TriggerType]messageTemplate{
	domain.TriggerPeakTime: {
		Title: "Stay Strong",
		Body:  "This is usually a challenging time in your {{addiction}} recovery. You've made it {{days}} days. Keep your focus on {{goals}}.",
	},
	domain.TriggerCraving: {
		Title: "This Feeling Will Pass",
		Body:  "Cravings are temporary. You've stayed strong for {{days}} days and rated your motivation {{motivation}}/10. Breathe, and remember {{goals}}.",
	},
	domain.TriggerMilestone: {
		Title: "Milestone Reached",
		Body:  "{{days}} days free from {{addiction}}. Your motivation of {{motivation}}/10 is paying off. Next up: {{goals}}.",
	},
	domain.TriggerMotivation: {
		Title: "Keep Going",
		Body:  "Every day counts. {{days}} days into your {{addiction}} recovery and still moving toward {{goals}}.",
	},
}

// Personalizer renders notification text from a trigger type and whatever
// profile data exists. It never fails; missing data degrades to defaults.
type Personalizer struct {
	profiles  ProfileStore
	templates TemplateStore
	log       *logger.Logger
	now       func() time.Time
}

// NewPersonalizer creates a new personalizer. templates may be nil when no
// override store is configured.
func NewPersonalizer(profiles ProfileStore, templates TemplateStore, log *logger.Logger) *Personalizer {
	return &Personalizer{
		profiles:  profiles,
		templates: templates,
		log:       log,
		now:       time.Now,
	}
}

// Render produces the title and body for a notification. Unknown trigger
// types fall back to the motivation template; a missing profile yields the
// template verbatim.
func (p *Personalizer) Render(ctx context.Context, userID string, trigger domain.TriggerType) (string, string) {
	if !domain.KnownTrigger(trigger) {
		trigger = domain.TriggerMotivation
	}

	tmpl := defaultTemplates[trigger]
	if p.templates != nil {
		override, err := p.templates.FindByTrigger(ctx, trigger)
		if err != nil {
			p.log.Warn("Failed to load template override", "error", err, "trigger", trigger)
		} else if override != nil {
			tmpl = messageTemplate{Title: override.Title, Body: override.Body}
		}
	}

	profile, err := p.profiles.GetByUserID(ctx, userID)
	if err != nil {
		p.log.Warn("Failed to load profile for personalization", "error", err, "user_id", userID)
		return tmpl.Title, tmpl.Body
	}
	if profile == nil {
		return tmpl.Title, tmpl.Body
	}

	goals := profile.Goals
	if goals == "" {
		goals = defaultGoals
	}

	vars := map[string]string{
		"addiction":  strings.ToLower(profile.AddictionName()),
		"days":       strconv.Itoa(p.daysSince(profile.CreatedAt)),
		"motivation": strconv.Itoa(profile.MotivationLevel),
		"goals":      goals,
	}

	return applyVariables(tmpl.Title, vars), applyVariables(tmpl.Body, vars)
}

// daysSince counts elapsed days rounded up to the next whole day
func (p *Personalizer) daysSince(created time.Time) int {
	elapsed := p.now().Sub(created)
	if elapsed <= 0 {
		return 0
	}
	return int(math.Ceil(elapsed.Hours() / 24))
}

// applyVariables replaces {{key}} placeholders with their values
func applyVariables(template string, variables map[string]string) string {
	result := template
	for key, value := range variables {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return result
}
